package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/rfp-advisor/internal/decision"
	"github.com/spigell/rfp-advisor/internal/extract"
	"github.com/spigell/rfp-advisor/internal/logger"
	"github.com/spigell/rfp-advisor/internal/prompt"
	"github.com/spigell/rfp-advisor/internal/upload"
)

const (
	PromptShowComparables = "Show comparable engagements"
	PromptDumpToFile      = "Dump decisions to file"
	PromptExit            = "Exit"

	maxConcurrentDecisions = 4
)

var errExit = errors.New("exit requested")

var followUpPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowComparables, PromptDumpToFile, PromptExit},
}

// FileInfo describes the analysed upload.
type FileInfo struct {
	Name   string `json:"original_name"`
	Size   int    `json:"size"`
	Format string `json:"format"`
}

// Report is what decide prints for every document.
type Report struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	FileInfo FileInfo `json:"file_info"`
	decision.Result
}

var decideCmd = &cobra.Command{
	Use:   "decide <file>...",
	Short: "Recommend whether to pursue one or more RFP documents (txt or pdf)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decide(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(decideCmd)

	decideCmd.Flags().BoolP("yes", "y", false, "do not ask what to do after the decisions are printed")
	decideCmd.Flags().IntP("top-k", "k", 0, "number of comparable engagements sent to the reasoning backend")
	decideCmd.Flags().StringP("output", "o", "", "also write the decisions to this file")

	viper.BindPFlag("top-k", decideCmd.Flags().Lookup("top-k"))
	viper.BindPFlag("output", decideCmd.Flags().Lookup("output"))
}

func decide(cmd *cobra.Command, args []string) {
	// The backend call is never cancelled once started; it is bounded by its own retry policy.
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the rfp-advisor", zap.String("version", buildVersion()))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	// upload errors are reported before any decision is attempted
	docs := make([]extract.Document, 0, len(args))
	for _, path := range args {
		doc, err := upload.Open(path)
		if err != nil {
			logger.Fatal("rejecting document", zap.String("path", path), zap.Error(err))
		}
		docs = append(docs, doc)
	}

	pipeline, err := newPipeline(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the decision pipeline", zap.Error(err))
	}

	reports := decideAll(ctx, pipeline, docs)

	if err := writeReports(os.Stdout, reports); err != nil {
		logger.Fatal("printing decisions", zap.Error(err))
	}

	if output := viper.GetString("output"); output != "" {
		if err := writeReportsToFile(output, reports); err != nil {
			logger.Fatal("writing decisions", zap.Error(err))
		}
		logger.Info("decisions written", zap.String("filename", output))
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return
	}

	if err := followUp(&followUpPrompt, logger, reports); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

type actionSelector interface {
	Run() (int, string, error)
}

// followUp asks for actions until the user exits. Closed or interrupted input ends
// the loop normally since the decisions are already printed.
func followUp(selector actionSelector, logger *zap.Logger, reports []Report) error {
	for {
		_, action, err := selector.Run()
		if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
			logger.Info("exiting", zap.String("reason", "input closed"))
			return nil
		}
		if err != nil {
			return err
		}

		if err := handleAction(action, logger, reports); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// decideAll runs the pipeline for every document concurrently and keeps argument order.
func decideAll(ctx context.Context, pipeline *decision.Pipeline, docs []extract.Document) []Report {
	reports := make([]Report, len(docs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentDecisions)
	for i, doc := range docs {
		g.Go(func() error {
			reports[i] = newReport(doc, pipeline.Decide(ctx, doc))
			return nil
		})
	}
	// Decide never fails, so there is no error to report
	_ = g.Wait()

	return reports
}

func newReport(doc extract.Document, result decision.Result) Report {
	message := "RFP analysed successfully"
	if doc.Failed() {
		message = "RFP analysed, but its text could not be extracted"
	}

	return Report{
		Success: true,
		Message: message,
		FileInfo: FileInfo{
			Name:   doc.Name,
			Size:   len(doc.Raw),
			Format: string(doc.Format),
		},
		Result: result,
	}
}

func handleAction(action string, logger *zap.Logger, reports []Report) error {
	switch action {
	case PromptShowComparables:
		for _, report := range reports {
			for _, e := range report.Comparables {
				logger.Info(prompt.ComparableLine(e), zap.String("document", report.FileInfo.Name))
			}
		}
		return nil
	case PromptDumpToFile:
		filename, err := dumpReportsToTmpFile(reports)
		if err != nil {
			return fmt.Errorf("dump decisions to file: %w", err)
		}
		logger.Info("dumping decisions to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "requested from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func writeReports(w io.Writer, reports []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

func writeReportsToFile(path string, reports []Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeReports(file, reports)
}

func dumpReportsToTmpFile(reports []Report) (string, error) {
	file, err := os.CreateTemp("", "rfp_decisions_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeReports(file, reports); err != nil {
		return "", err
	}
	return file.Name(), nil
}
