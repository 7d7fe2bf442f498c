package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"campus-nav/pkg/dataset"
	"campus-nav/pkg/navigation"

	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	datasetFile = flag.String("f", "data/campus_locations.json", "campus locations dataset file")
	maxEdgeKM   = flag.Float64("d", navigation.DefaultMaxEdgeKM, "maximum walkable edge distance in kilometers")
)

func main() {
	flag.Parse()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/3]Loading campus dataset..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	points, err := dataset.Load(*datasetFile)
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][2/3]Building proximity graph...")
	graph, err := navigation.BuildGraph(points, *maxEdgeKM)
	if err != nil {
		log.Fatal(err)
	}
	bar.Add(1)

	bar.Describe("[cyan][3/3]Checking connectivity...")
	isolated, componentSizes := connectivity(graph)
	bar.Add(1)
	fmt.Println()

	fmt.Printf("locations: %d\n", graph.NodeCount())
	fmt.Printf("edges: %d (max edge %.2f km)\n", graph.EdgeCount(), *maxEdgeKM)
	fmt.Printf("connected components: %d (sizes %v)\n", len(componentSizes), componentSizes)
	if len(isolated) == 0 {
		fmt.Println("isolated locations: none")
		return
	}
	fmt.Printf("isolated locations: %d\n", len(isolated))
	for _, name := range isolated {
		fmt.Printf("  - %s\n", name)
	}
}

// connectivity reports nodes without any edge and the size of every
// connected component, isolated nodes included, largest first.
func connectivity(g *navigation.Graph) ([]string, []int) {
	var isolated []string
	var componentSizes []int
	seen := make(map[string]bool)

	for _, node := range g.Nodes() {
		if len(g.Neighbors(node)) == 0 {
			isolated = append(isolated, node)
		}
		if seen[node] {
			continue
		}
		size := 0
		stack := []string{node}
		seen[node] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, neighbor := range g.Neighbors(current) {
				if !seen[neighbor] {
					seen[neighbor] = true
					stack = append(stack, neighbor)
				}
			}
		}
		componentSizes = append(componentSizes, size)
	}

	sort.Strings(isolated)
	sort.Sort(sort.Reverse(sort.IntSlice(componentSizes)))
	return isolated, componentSizes
}
