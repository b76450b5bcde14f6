// Package main provides the ghostwriter CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/manitmishra/ghostwriter/cli"
	"github.com/manitmishra/ghostwriter/config"
	"github.com/manitmishra/ghostwriter/model"
	"github.com/manitmishra/ghostwriter/storage"
)

var verbose bool

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "ghostwriter",
		Short: "AI-assisted email drafting",
		Long: `Ghostwriter polishes drafts and generates emails from thread context.

Replies come back as HTML body text; new emails come back with a subject
and body. Configure an API key first with 'ghostwriter config set-key'.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(draftCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func draftCmd() *cobra.Command {
	var (
		draft       string
		draftStdin  bool
		tone        string
		mode        string
		contextPath string
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Polish a draft or generate an email",
		Long: `Run one drafting request and print the result JSON.

With --draft the text is polished; with an empty draft and a reply context
(--context) a reply is generated from the thread. The thread-context file
is JSON: {"type":"reply","messages":[{"sender":"...","body":"..."}]}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New()
			if err != nil {
				return err
			}

			if draftStdin {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read draft from stdin: %w", err)
				}
				draft = string(data)
			}

			threadCtx, err := cli.ReadContextFile(contextPath)
			if err != nil {
				return err
			}

			req := model.GenerationRequest{
				Draft:   draft,
				Context: threadCtx,
				Tone:    tone,
				Mode:    resolveMode(mode, draft),
			}

			if req.Mode == model.ModeGenerate && req.Context.Type == model.ContextReply && len(req.Context.Messages) == 0 {
				return fmt.Errorf("cannot generate a reply: the context file has no thread messages")
			}

			opts := cli.Options{
				Provider:  settings.Provider,
				Model:     settings.Model,
				MaxTokens: settings.MaxTokens,
				Timeout:   settings.Timeout,
				DBPath:    settings.DBPath,
				Verbose:   verbose,
			}
			return cli.Draft(cmd.Context(), req, opts, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&draft, "draft", "d", "", "Draft text to polish or notes to write from")
	cmd.Flags().BoolVar(&draftStdin, "stdin", false, "Read the draft text from stdin")
	cmd.Flags().StringVarP(&tone, "tone", "t", "", "Tone (Regular, Professional, Friendly, Confident, Bitcamp, Custom); stored tone when omitted")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Mode (polish, generate); inferred from the draft when omitted")
	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "Path to a thread-context JSON file")

	return cmd
}

// resolveMode infers the mode the way the compose surface does: a non-empty
// draft means polish, an empty one means generate.
func resolveMode(mode, draft string) model.Mode {
	switch mode {
	case "polish":
		return model.ModePolish
	case "generate":
		return model.ModeGenerate
	default:
		if strings.TrimSpace(draft) != "" {
			return model.ModePolish
		}
		return model.ModeGenerate
	}
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored settings",
	}

	cmd.AddCommand(
		setCmd("set-key", "Store the API key", storage.KeyAPIKey),
		setCmd("set-tone", "Store the default tone", storage.KeyTone),
		setCmd("set-custom", "Store custom tone preferences", storage.KeyCustomTonePrefs),
		showCmd(),
	)

	return cmd
}

func setCmd(use, short, key string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New()
			if err != nil {
				return err
			}
			value := args[0]
			if key == storage.KeyAPIKey {
				value = strings.TrimSpace(value)
				if !strings.HasPrefix(value, "sk-ant-") {
					fmt.Fprintln(os.Stderr, `Warning: API key does not start with expected prefix "sk-ant-"`)
				}
			}
			return cli.SetSetting(cmd.Context(), settings.DBPath, key, value)
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print stored settings (API key masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.New()
			if err != nil {
				return err
			}
			return cli.ShowSettings(cmd.Context(), settings.DBPath, os.Stdout)
		},
	}
}
