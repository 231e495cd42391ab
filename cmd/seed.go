package cmd

import (
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaforge/dialect"
	"schemaforge/internal/logger"
	"schemaforge/internal/seeder"
)

var (
	seedFile    string
	seedOut     string
	seedDialect string
	seedCount   int
	seedSeed    int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate INSERT statements with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadModel(seedFile)
		if err != nil {
			return err
		}

		targetDialect := viper.GetString("settings.dialect")
		if seedDialect != "" {
			targetDialect = seedDialect
		}
		d, err := dialect.Get(targetDialect)
		if err != nil {
			return err
		}

		targetCount := viper.GetInt("settings.default_count")
		if seedCount > 0 {
			targetCount = seedCount
		}

		logger.Log.Infof("Seeding %d tables with count=%d per table", len(m.Tables), targetCount)
		start := time.Now()

		uiprogress.Start()
		bar := uiprogress.AddBar(targetCount * len(m.Tables)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Generating"
		})

		script, err := seeder.Generate(m, d, seeder.Options{
			Rows: targetCount,
			Seed: seedSeed,
			OnProgress: func() {
				bar.Incr()
			},
		})
		uiprogress.Stop()
		if err != nil {
			return err
		}

		logger.Log.Infof("Seed script ready in %s", time.Since(start).Round(time.Millisecond))
		return writeOutput(seedOut, script)
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "model JSON or SQL file")
	seedCmd.Flags().StringVarP(&seedOut, "out", "o", "", "write the script here instead of stdout")
	seedCmd.Flags().StringVar(&seedDialect, "dialect", "", "target dialect (overrides config)")
	seedCmd.Flags().IntVar(&seedCount, "count", 0, "rows per table (overrides config)")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "random seed for reproducible output")
	seedCmd.MarkFlagRequired("file")

	viper.BindPFlag("settings.default_count", seedCmd.Flags().Lookup("count"))
	viper.SetDefault("settings.default_count", 10)
}
