package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/omp-cli/internal/adapters/render/view"
	"github.com/bnema/omp-cli/internal/domain"
	"github.com/spf13/cobra"
)

const exportFileMode = 0o600

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the ministry assistants",
	}

	cmd.AddCommand(
		newChatAssistantsCmd(),
		newChatSendCmd(app),
		newChatHistoryCmd(app),
		newChatExportCmd(app),
		newChatSessionCmd(app),
	)

	return cmd
}

func newChatAssistantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "assistants",
		Short:       "List the available assistants",
		Annotations: map[string]string{skipWireAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, err := view.RenderAssistants(domain.AssistantBibleMentor)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newChatSendCmd(app *app) *cobra.Command {
	var assistant string

	cmd := &cobra.Command{
		Use:   "send <message...>",
		Short: "Send one message and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := selectAssistant(cmd.Context(), app, assistant); err != nil {
				return err
			}

			reply, err := sendWithSpinner(cmd, app, strings.Join(args, " "))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), view.PlainText(reply.Content))
			return err
		},
	}

	addAssistantFlag(cmd, &assistant)
	return cmd
}

func newChatHistoryCmd(app *app) *cobra.Command {
	var assistant string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation kept for an assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := selectAssistant(cmd.Context(), app, assistant); err != nil {
				return err
			}
			return writeTranscript(cmd, app)
		},
	}

	addAssistantFlag(cmd, &assistant)
	return cmd
}

func newChatExportCmd(app *app) *cobra.Command {
	var assistant string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the conversation with an assistant as a text file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := selectAssistant(cmd.Context(), app, assistant); err != nil {
				return err
			}
			return exportConversation(cmd, app, output)
		},
	}

	addAssistantFlag(cmd, &assistant)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Target file or directory (default: suggested name in the working directory, - for stdout)")
	return cmd
}

// newChatSessionCmd runs a line based conversation on stdin. Lines starting
// with a slash are commands.
func newChatSessionCmd(app *app) *cobra.Command {
	var assistant string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Start an interactive conversation (/help for commands)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := selectAssistant(cmd.Context(), app, assistant); err != nil {
				return err
			}
			if err := writeTranscript(cmd, app); err != nil {
				return err
			}
			return runChatSession(cmd, app)
		},
	}

	addAssistantFlag(cmd, &assistant)
	return cmd
}

func runChatSession(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := runSessionCommand(cmd, app, line)
			if err != nil {
				_, _ = fmt.Fprintf(out, "error: %s\n", domain.UserMessage(err))
			}
			if quit {
				return nil
			}
			continue
		}

		reply, err := sendWithSpinner(cmd, app, line)
		if err != nil {
			_, _ = fmt.Fprintf(out, "error: %s\n", domain.UserMessage(err))
			continue
		}
		_, _ = fmt.Fprintf(out, "%s: %s\n", app.conversations.Active().DisplayName(), view.PlainText(reply.Content))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read chat input: %w", err)
	}
	return nil
}

func runSessionCommand(cmd *cobra.Command, app *app, line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true, nil
	case "/clear":
		app.conversations.Clear()
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Conversation cleared locally.")
		return false, nil
	case "/history":
		return false, writeTranscript(cmd, app)
	case "/export":
		target := ""
		if len(fields) > 1 {
			target = fields[1]
		}
		return false, exportConversation(cmd, app, target)
	case "/switch":
		if len(fields) < 2 {
			return false, errors.New("usage: /switch <assistant>")
		}
		if err := selectAssistant(cmd.Context(), app, fields[1]); err != nil {
			return false, err
		}
		return false, writeTranscript(cmd, app)
	case "/help":
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Commands: /history, /clear, /export [path], /switch <assistant>, /quit")
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %s", fields[0])
	}
}

func addAssistantFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "assistant", "a", string(domain.AssistantBibleMentor),
		"Assistant: bible_mentor, sermon_coach or exegesis_guide")
}

func selectAssistant(ctx context.Context, app *app, raw string) error {
	assistant, err := domain.ParseAssistantType(raw)
	if err != nil {
		return err
	}
	if err := app.conversations.SelectAssistant(ctx, assistant); err != nil {
		return fmt.Errorf("load %s conversation: %w", assistant.DisplayName(), err)
	}
	return nil
}

func sendWithSpinner(cmd *cobra.Command, app *app, text string) (domain.Message, error) {
	var reply domain.Message
	label := app.conversations.Active().DisplayName() + " está escribiendo..."
	err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, func(ctx context.Context) error {
		var sendErr error
		reply, sendErr = app.conversations.Send(ctx, text)
		return sendErr
	})
	return reply, err
}

func writeTranscript(cmd *cobra.Command, app *app) error {
	output, err := view.RenderTranscript(view.Transcript{
		Assistant: app.conversations.Active(),
		Messages:  app.conversations.Messages(),
		Pending:   app.conversations.Pending(),
		Location:  app.settings.Location,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

func exportConversation(cmd *cobra.Command, app *app, target string) error {
	export, err := app.conversations.Export()
	if err != nil {
		return err
	}

	if target == "-" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), export.Content)
		return err
	}

	path := exportPath(target, export.FileName)
	if err := writeExport(path, export.Content); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Conversation exported to %s\n", path)
	return nil
}

func exportPath(target, suggested string) string {
	if target == "" {
		return suggested
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, suggested)
	}
	return target
}

func writeExport(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content+"\n"), exportFileMode); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
