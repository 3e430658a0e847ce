package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/buyout-calculator/internal/calculation"
	"github.com/rpgo/buyout-calculator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	report, err := calc.NewCalculationEngine().RunConfiguration(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("Month,MeanStay,MeanBuyout,CumStay,CumBuyout,Diff")
	for _, m := range report.Summary.Timeline {
		fmt.Printf("%d,%s,%s,%s,%s,%s\n", m.Month,
			m.MeanStay.StringFixed(0), m.MeanBuyout.StringFixed(0),
			m.CumulativeStay.StringFixed(0), m.CumulativeBuyout.StringFixed(0),
			m.CumulativeStay.Sub(m.CumulativeBuyout).StringFixed(0))
	}

	be := report.Summary.BreakEven
	fmt.Printf("\nBreakEven: %+v\n", be)
}
