package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaforge/dialect"
	"schemaforge/generator"
)

var (
	genFile    string
	genOut     string
	genDialect string
	genFormat  string
	genColor   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate DDL or ORM sources from a model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(genFile)
		if err != nil {
			return err
		}

		targetDialect := viper.GetString("settings.dialect")
		if genDialect != "" {
			targetDialect = genDialect
		}

		var out string
		switch genFormat {
		case "", "sql":
			d, err := dialect.Get(targetDialect)
			if err != nil {
				return err
			}
			out = generator.Generate(m, d)
			if genColor && genOut == "" {
				out = generator.FormatForDisplay(out)
			}
		case "gorm":
			out = generator.ExportGORM(m)
		case "prisma":
			out = generator.ExportPrisma(m)
		default:
			return fmt.Errorf("unknown format %q (want sql, gorm or prisma)", genFormat)
		}

		return writeOutput(genOut, out)
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "model JSON or SQL file")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "write output here instead of stdout")
	generateCmd.Flags().StringVar(&genDialect, "dialect", "", "target dialect (overrides config)")
	generateCmd.Flags().StringVar(&genFormat, "format", "sql", "output format: sql, gorm or prisma")
	generateCmd.Flags().BoolVar(&genColor, "color", false, "highlight SQL for the terminal")
	generateCmd.MarkFlagRequired("file")

	viper.BindPFlag("settings.dialect", generateCmd.Flags().Lookup("dialect"))
	viper.SetDefault("settings.dialect", "postgresql")
}
