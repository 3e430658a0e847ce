package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rpgo/buyout-calculator/internal/calculation"
)

// Prints the job-search conclusion probability for every elapsed month.
func main() {
	if len(os.Args) != 4 {
		fmt.Println("usage: hazard_table <optimistic> <likely> <pessimistic>")
		return
	}
	var months [3]int
	for i, arg := range os.Args[1:] {
		v, err := strconv.Atoi(arg)
		if err != nil {
			panic(err)
		}
		months[i] = v
	}

	h, err := calculation.NewHazardModel(months[0], months[1], months[2])
	if err != nil {
		panic(err)
	}
	fmt.Printf("alpha=%.4f beta=%.4f\n", h.Alpha, h.Beta)
	fmt.Println("Elapsed,Probability")
	for elapsed := 0; elapsed <= months[2]+1; elapsed++ {
		fmt.Printf("%d,%.6f\n", elapsed, h.Probability(elapsed))
	}
}
