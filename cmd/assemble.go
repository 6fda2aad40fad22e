/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/goblackoil/assembly"
	"github.com/notargets/goblackoil/blackoil"
	"github.com/notargets/goblackoil/deck"
	"github.com/notargets/goblackoil/grid"
)

// AssembleCmd represents the assemble command
var AssembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Run the one-time property and initial state assembly for a deck",
	Long: `
Loads a YAML deck, builds the Cartesian mesh from its dimensions and ACTNUM
mask, initializes the black oil PVT correlations and runs the full assembly
pass: rock properties, face permeabilities, saturation function laws and the
initial per-cell thermodynamic state.

goblackoil assemble -d deck.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		ac := &AssembleConfig{}
		ac.DeckPath, _ = cmd.Flags().GetString("deck")
		ac.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		ac.Profile, _ = cmd.Flags().GetBool("profile")
		if err := RunAssemble(ac); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(AssembleCmd)
	AssembleCmd.Flags().StringP("deck", "d", "deck.yaml", "YAML deck file with grid, rock and PVT data")
	AssembleCmd.Flags().Float64P("temperature", "t", assembly.DefaultTemperature, "reservoir temperature [K]")
	AssembleCmd.Flags().Bool("profile", false, "write a CPU profile of the assembly pass")
}

type AssembleConfig struct {
	DeckPath    string
	Temperature float64
	Profile     bool
}

func RunAssemble(ac *AssembleConfig) error {
	if ac.Profile {
		defer profile.Start().Stop()
	}

	d, err := deck.Load(ac.DeckPath)
	if err != nil {
		return err
	}
	nx, ny, nz := d.Dimensions[0], d.Dimensions[1], d.Dimensions[2]
	mesh, err := grid.NewCartesian(nx, ny, nz, d.Actnum)
	if err != nil {
		return err
	}
	fs, err := blackoil.NewFluidSystem(d)
	if err != nil {
		return err
	}

	res, err := assembly.Assemble(mesh, d, fs, assembly.Config{Temperature: ac.Temperature})
	if err != nil {
		return err
	}

	fmt.Printf("[%dx%dx%d]\t\t= Logical Grid\n", nx, ny, nz)
	fmt.Printf("[%d]\t\t\t= Active Cells\n", mesh.NumCells())
	fmt.Printf("[%d]\t\t\t= Interior Faces\n", res.Faces.NumFaces())
	fmt.Printf("[%d]\t\t\t= Saturation Regions\n", res.Laws.NumRegions())
	fmt.Printf("%8.2f\t\t= Temperature [K]\n", ac.Temperature)
	return nil
}
