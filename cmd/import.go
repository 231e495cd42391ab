package cmd

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schemaforge/dialect"
	"schemaforge/internal/inspect"
	"schemaforge/internal/logger"
	"schemaforge/schema"
)

var (
	importDSN    string
	importDriver string
	importSchema string
	importOut    string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Build a model from a live database",
	RunE: func(cmd *cobra.Command, args []string) error {
		driverName, dsn, err := resolveConnection()
		if err != nil {
			return err
		}

		sqlDriver, dialectKey, err := driverKeys(driverName)
		if err != nil {
			return err
		}

		logger.Log.Infof("Connecting via %s", driverName)
		db, err := sql.Open(sqlDriver, dsn)
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}

		var m *schema.Model
		if dialectKey == "sqlite" {
			m, err = inspect.FromSQLite(db)
		} else {
			d, derr := dialect.Get(dialectKey)
			if derr != nil {
				return derr
			}
			intro, ok := d.(dialect.Introspector)
			if !ok {
				return fmt.Errorf("dialect %s does not support live inspection", dialectKey)
			}
			m, err = inspect.FromDatabase(db, intro, importSchema)
		}
		if err != nil {
			return err
		}

		logger.Log.Infof("Imported %d tables, %d relationships", len(m.Tables), len(m.Edges))
		out, err := marshalModel(m)
		if err != nil {
			return err
		}
		return writeOutput(importOut, out)
	},
}

// resolveConnection applies flag over config precedence. The databases
// list with an active entry wins over the flat database.* keys.
func resolveConnection() (driver, dsn string, err error) {
	driver = importDriver
	dsn = importDSN

	if dsn == "" {
		if active, cfgErr := GetActiveDBConfig(); cfgErr == nil {
			if driver == "" {
				driver = active.Driver
			}
			dsn = active.DSN
		}
	}
	if dsn == "" {
		dsn = viper.GetString("database.dsn")
	}
	if driver == "" {
		driver = viper.GetString("database.driver")
	}

	if dsn == "" {
		return "", "", fmt.Errorf("database.dsn is required (via --dsn or config)")
	}
	if driver == "" {
		return "", "", fmt.Errorf("database.driver is required (via --driver or config)")
	}
	return driver, dsn, nil
}

// driverKeys maps a user-facing driver name to the registered sql driver
// and the matching dialect key.
func driverKeys(name string) (sqlDriver, dialectKey string, err error) {
	switch strings.ToLower(name) {
	case "mysql":
		return "mysql", "mysql", nil
	case "postgres", "postgresql":
		return "postgres", "postgresql", nil
	case "sqlserver", "mssql":
		return "sqlserver", "sqlserver", nil
	case "oracle":
		return "oracle", "oracle", nil
	case "sqlite", "sqlite3":
		return "sqlite3", "sqlite", nil
	}
	return "", "", fmt.Errorf("unknown driver %q (want mysql, postgres, sqlserver, oracle or sqlite)", name)
}

func init() {
	RootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importDSN, "dsn", "", "database source name")
	importCmd.Flags().StringVar(&importDriver, "driver", "", "driver: mysql, postgres, sqlserver, oracle or sqlite")
	importCmd.Flags().StringVar(&importSchema, "schema", "", "schema to inspect (defaults per dialect)")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "write model JSON here instead of stdout")

	viper.BindPFlag("database.dsn", importCmd.Flags().Lookup("dsn"))
	viper.BindPFlag("database.driver", importCmd.Flags().Lookup("driver"))
}
