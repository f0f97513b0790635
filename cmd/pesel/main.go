/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command pesel is a demonstration front end for the codec: it parses
// identifiers given on the command line and generates fresh ones for a
// birth date and sex. Run without a subcommand it walks through the
// classic sample number.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/pesel"
)

// sampleNumber is the identifier the bare demo walks through.
const sampleNumber = "44051401458"

var (
	genYear  int
	genMonth int
	genDay   int
	genSex   string
)

var rootCmd = &cobra.Command{
	Use:   "pesel",
	Short: "Parse and generate PESEL numbers",
	Long: `Parse and generate PESEL numbers — the 11-digit Polish national
identifiers encoding a birth date and sex behind a weighted checksum.

Run without a subcommand to see the codec walk through a sample number.`,
	RunE: runDemo,
}

var parseCmd = &cobra.Command{
	Use:   "parse <number>",
	Short: "Parse an 11-digit PESEL and print what it encodes",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Short:   "Generate a valid PESEL for a birth date and sex",
	Example: "  pesel generate --year 1980 --month 5 --day 26 --sex male",
	RunE:    runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genYear, "year", 0, "Birth year (1800-2299)")
	generateCmd.Flags().IntVar(&genMonth, "month", 0, "Birth month (1-12)")
	generateCmd.Flags().IntVar(&genDay, "day", 0, "Birth day")
	generateCmd.Flags().StringVar(&genSex, "sex", "", "Sex: male or female")
	for _, flag := range []string{"year", "month", "day", "sex"} {
		_ = generateCmd.MarkFlagRequired(flag)
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(generateCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	p, err := pesel.Parse(sampleNumber)
	if err != nil {
		return err
	}
	fmt.Println(p)

	fmt.Println("--- PESEL generation ----")
	g, err := pesel.Generate(1980, 5, 26, pesel.Male)
	if err != nil {
		return err
	}
	fmt.Printf("generated pesel: %s\n", g)
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	p, err := pesel.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Println(p)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	sex, err := pesel.ParseSex(genSex)
	if err != nil {
		return err
	}
	p, err := pesel.Generate(genYear, genMonth, genDay, sex)
	if err != nil {
		return err
	}
	fmt.Println(p)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
