// zusigen compiles a root XSD file describing the Zusi data format
// into a Go package of record types and a recursive-descent parser
// (spec.md section 6, "Schema-compiler CLI").
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zusi3/schemaparser/codegen"
	"github.com/zusi3/schemaparser/schema"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outDir        string
		whitelist     []string
		whitelistFile string
		ignoreUnknown bool
		useGLM        bool
		packageName   string
	)

	cmd := &cobra.Command{
		Use:   "zusigen <root-xsd>",
		Short: "Generate Go record types and a parser from a Zusi XSD schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(os.Stderr, "", 0)

			s, err := schema.Load(args[0], schema.ErrorLog(logger))
			if err != nil {
				return fmt.Errorf("zusigen: %w", err)
			}

			w, err := codegen.NewWhitelist(whitelist...)
			if err != nil {
				return fmt.Errorf("zusigen: %w", err)
			}
			if whitelistFile != "" {
				data, err := os.ReadFile(whitelistFile)
				if err != nil {
					return fmt.Errorf("zusigen: %w", err)
				}
				w, err = codegen.LoadWhitelistFile(data, w)
				if err != nil {
					return fmt.Errorf("zusigen: %w", err)
				}
			}

			cfg := codegen.NewConfig(
				codegen.ErrorLog(logger),
				codegen.OutDir(outDir),
				codegen.IgnoreUnknown(ignoreUnknown),
				codegen.UseGLM(useGLM),
				codegen.PackageName(packageName),
				codegen.WithWhitelist(w),
			)

			return codegen.Generate(s, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&outDir, "out-dir", ".", "directory receiving the four generated source files")
	flags.StringArrayVar(&whitelist, "whitelist", nil, "Parent::Name entry to retain (repeatable)")
	flags.StringVar(&whitelistFile, "whitelist-file", "", "YAML file of Parent -> [Name, ...] entries to retain")
	flags.BoolVar(&ignoreUnknown, "ignore-unknown", false, "suppress warnings for whitelist entries naming unknown types or members")
	flags.BoolVar(&useGLM, "use-glm", false, "alias Vec2/Vec3/Quaternion to gentests/glmcompat instead of defining them")
	flags.StringVar(&packageName, "package", "zusi", "name of the generated Go package")

	return cmd
}
