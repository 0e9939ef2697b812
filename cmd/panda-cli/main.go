package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/paveg/panda"
	"github.com/paveg/panda/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "Panda Series/DataFrame Library CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: panda-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun basic demo\n")
	fmt.Fprintf(os.Stderr, "  --config FILE\n\t\tLoad a JSON or YAML configuration file first\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run basic demo")
	configFlag := flag.String("config", "", "Configuration file (.json, .yaml, .yml)")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	if *configFlag != "" {
		if err := panda.LoadConfig(*configFlag); err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
	}

	switch {
	case *demoFlag:
		if err := runDemo(); err != nil {
			log.Printf("Error running demo: %v", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func runDemo() error {
	fmt.Println("Panda Series/DataFrame Library Demo")
	fmt.Println("===================================")

	left, err := panda.SeriesFromLabeled(
		[]float64{1, panda.NaN(), 3, 4},
		[]string{"a", "b", "c", "d"},
		panda.WithName("left"),
	)
	if err != nil {
		return err
	}
	right, err := panda.SeriesFromLabeled(
		[]float64{10, 20, 0},
		[]string{"a", "c", "e"},
		panda.WithName("right"),
	)
	if err != nil {
		return err
	}

	fmt.Println(left)
	fmt.Println(right)

	if err := left.Add(right); err != nil {
		return err
	}
	fmt.Println("Aligned addition:")
	fmt.Println(left)

	if err := printStatistics(left); err != nil {
		return err
	}

	cleaned, err := left.RemoveNaN()
	if err != nil {
		return err
	}
	unique, err := cleaned.CountUnique(true)
	if err != nil {
		return err
	}
	fmt.Printf("Non-missing values: %d, distinct: %d\n\n", cleaned.Len(), unique)

	df, err := panda.DataFrameFromMatrix(
		[][]float64{{25, 100000}, {30, 80000}, {35, 120000}},
		[]string{"age", "salary"},
	)
	if err != nil {
		return err
	}
	if err := df.AddRow([]float64{28, 75000}, "new hire"); err != nil {
		return err
	}
	fmt.Println(df)

	salary, err := df.Column("salary")
	if err != nil {
		return err
	}
	median, err := salary.Median()
	if err != nil {
		return err
	}
	fmt.Printf("Median salary: %.0f\n", median)

	row, err := df.Row(df.Len() - 1)
	if err != nil {
		return err
	}
	fmt.Println("Last row:", row)
	fmt.Println("Demo completed successfully!")
	return nil
}

func printStatistics(s *panda.Series[float64]) error {
	stats := []struct {
		name string
		fn   func() (float64, error)
	}{
		{"sum", s.Sum},
		{"mean", s.Mean},
		{"median", s.Median},
		{"std", s.Std},
		{"max", s.Max},
	}

	for _, stat := range stats {
		v, err := stat.fn()
		if err != nil {
			return fmt.Errorf("computing %s: %w", stat.name, err)
		}
		fmt.Printf("%-6s %10.4f\n", stat.name, v)
	}
	fmt.Println()
	return nil
}
