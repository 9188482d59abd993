//go:build windows

package zusipath

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// Registry value name the original reader looks up under
// Software\Zusi3 (utils.hpp's bestimmeZusiDatenpfad).
const valueName = "DatenVerzeichnis"

// Roots reads the user and official data roots from the two registry
// views under Software\Zusi3 (spec.md section 6, "two registry keys
// ... with both 64- and 32-bit views consulted"): the 64-bit view
// supplies the official root, the 32-bit view (WOW6432Node on a
// 64-bit host) the user root, matching how a 32-bit and a 64-bit Zusi
// install each register their own DatenVerzeichnis.
func Roots() (user, official string, err error) {
	official, errOfficial := readRoot(registry.KEY_WOW64_64KEY)
	user, errUser := readRoot(registry.KEY_WOW64_32KEY)
	if errOfficial != nil && errUser != nil {
		return "", "", fmt.Errorf("zusipath: Software\\Zusi3: %w", errOfficial)
	}
	return user, official, nil
}

func readRoot(view uint32) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `Software\Zusi3`, registry.QUERY_VALUE|view)
	if err != nil {
		return "", err
	}
	defer k.Close()

	s, _, err := k.GetStringValue(valueName)
	if err != nil {
		return "", err
	}
	return s, nil
}
