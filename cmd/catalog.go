package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/rfp-advisor/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the comparable engagements catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every comparable engagement",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		engagements, err := loadCatalog(viper.GetString("catalog-file"))
		if err != nil {
			return err
		}

		return printJSON(struct {
			Projects   []catalog.Engagement `json:"projects"`
			TotalCount int                  `json:"total_count"`
		}{
			Projects:   engagements.All(),
			TotalCount: engagements.Len(),
		})
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a single comparable engagement",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid engagement id %q: %w", args[0], err)
		}

		engagements, err := loadCatalog(viper.GetString("catalog-file"))
		if err != nil {
			return err
		}

		project, ok := engagements.Find(id)
		if !ok {
			return fmt.Errorf("project %d not found", id)
		}

		return printJSON(struct {
			Project catalog.Engagement `json:"project"`
		}{Project: project})
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	engagements, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return engagements, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
