package dependency

import (
	"fmt"
	"strings"
	"testing"
)

var flattenTests = [...]struct {
	edges   []string
	ordered []string
}{
	{
		edges: []string{
			"enemy.o -> enemy.c",
			"main.o -> main.c",
			"mygame -> enemy.o",
			"mygame -> main.o",
			"mygame -> player.o",
			"player.o -> player.c",
		},
		ordered: []string{
			"enemy.c",
			"enemy.o",
			"main.c",
			"main.o",
			"player.c",
			"player.o",
			"mygame",
		},
	},
	{
		// A two-node cycle (Phillip -> Yancy -> Phillip) does not
		// block Flatten from producing a total order.
		edges: []string{
			"Mildred -> Yancy",
			"Mrs -> Junior",
			"Mrs -> Phillip",
			"Phillip -> Yancy",
			"Yancy -> Junior",
			"Yancy -> Phillip",
		},
		ordered: []string{
			"Junior",
			"Phillip",
			"Yancy",
			"Mildred",
			"Mrs",
		},
	},
}

func TestFlatten(t *testing.T) {
	for _, tt := range flattenTests {
		var graph Graph

		t.Log(strings.Join(tt.edges, "\n"))
		for _, edge := range tt.edges {
			var target, dep string
			if _, err := fmt.Sscanf(edge, "%s -> %s", &target, &dep); err != nil {
				panic("bad test edge " + edge)
			}
			graph.Add(target, dep)
		}
		var i int
		graph.Flatten(func(vertex string) {
			if i >= len(tt.ordered) {
				t.Fatalf("advanced past expected output with %s", vertex)
			}
			if tt.ordered[i] != vertex {
				t.Errorf("got %q, wanted %q", vertex, tt.ordered[i])
			} else {
				t.Log(vertex)
			}
			i++
		})
		t.Log("")
	}
}

func TestCycles(t *testing.T) {
	var graph Graph
	graph.Add("Streckenelement", "Streckenelement")
	graph.Add("Streckenelement", "Vec3")

	cycles := graph.Cycles()
	if len(cycles) != 1 {
		t.Fatalf("Cycles() = %v, want exactly one self-recursive edge", cycles)
	}
	if cycles[0] != ([2]string{"Streckenelement", "Streckenelement"}) {
		t.Errorf("Cycles() = %v, want [[Streckenelement Streckenelement]]", cycles)
	}
}

func TestCyclesAcyclic(t *testing.T) {
	var graph Graph
	graph.Add("Info", "AutorEintrag")
	graph.Add("Zusi", "Info")

	if cycles := graph.Cycles(); len(cycles) != 0 {
		t.Errorf("Cycles() = %v, want none for an acyclic graph", cycles)
	}
}
