// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/agentdeck/internal/config"
	"github.com/jeranaias/agentdeck/internal/export"
	"github.com/jeranaias/agentdeck/internal/model"
	"github.com/jeranaias/agentdeck/internal/nav"
	"github.com/jeranaias/agentdeck/internal/seed"
	"github.com/jeranaias/agentdeck/internal/session"
)

// =============================================================================
// COMMAND
// =============================================================================

func newChatCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [agent|hive]",
		Short: "Chat in line mode without the full interface",
		Long: `Starts a plain line-mode session with the agent (default) or the hive.

The transcript starts from the same seed as the interface and is lost on
exit. Replies arrive after the same delay.

Commands:
  /export [md|json] [path]   write the transcript
  /attach <file>             simulate an upload (hive only)
  /history                   reprint the transcript
  /quit                      leave (Ctrl+D also works)`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{nav.Agent, nav.Hive},
		RunE: func(cmd *cobra.Command, args []string) error {
			view := nav.Agent
			if len(args) == 1 {
				view = args[0]
			}

			data, err := seed.Load()
			if err != nil {
				return err
			}
			sim := newChatSimulator(view, o.cfg, data, o.logger)
			defer sim.Close()

			line := liner.NewLiner()
			defer line.Close()
			line.SetCtrlCAborts(true)

			s := &chatSession{
				view:    view,
				sim:     sim,
				in:      line,
				out:     cmd.OutOrStdout(),
				cfg:     o.cfg,
				info:    o.info,
				log:     o.logger.Named("chat"),
				timeout: 5 * time.Second,
			}
			return s.run(cmd.Context())
		},
	}
}

// newChatSimulator builds the simulator for a chat view with the same
// responder and seed the interface uses.
func newChatSimulator(view string, cfg *config.Config, data *seed.Data, log *zap.Logger) *session.Simulator {
	opts := []session.Option{
		session.WithUserLabel(cfg.UI.UserLabel),
		session.WithLogger(log),
	}
	if view == nav.Hive {
		return session.NewSimulator(
			session.NewStore(data.HiveMessages(time.Now())...),
			session.MentionResponder{Mention: cfg.Hive.Mention, Label: cfg.Hive.Assistant},
			opts...,
		)
	}
	return session.NewSimulator(
		session.NewStore(data.AgentMessages()...),
		session.CannedResponder{Label: cfg.Agent.Name},
		opts...,
	)
}

// =============================================================================
// SESSION
// =============================================================================

// lineReader is the part of liner.State the session uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// chatSession is one line-mode conversation.
type chatSession struct {
	view    string
	sim     *session.Simulator
	in      lineReader
	out     io.Writer
	cfg     *config.Config
	info    session.Info
	log     *zap.Logger
	printed int

	// timeout bounds the wait for one round of replies.
	timeout time.Duration
}

func (s *chatSession) run(ctx context.Context) error {
	fmt.Fprintln(s.out, titleStyle.Render("AGENTDECK :: "+strings.ToUpper(s.view)))
	fmt.Fprintln(s.out, mutedStyle.Render(strings.Repeat("-", min(GetTerminalWidth(), 60))))
	fmt.Fprintln(s.out, mutedStyle.Render("Type /quit or press Ctrl+D to leave."))
	fmt.Fprintln(s.out)
	s.flush()

	prompt := s.cfg.UI.UserLabel + "> "
	for {
		input, err := s.in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		text := strings.TrimSpace(input)
		if text == "" {
			continue
		}
		s.in.AppendHistory(text)

		if strings.HasPrefix(text, "/") {
			if quit := s.command(ctx, text); quit {
				return nil
			}
			continue
		}

		if _, ok := s.sim.Submit(text); !ok {
			continue
		}
		// The user's own line is already on screen.
		s.printed = s.sim.Store().Len()
		s.wait(ctx)
	}
}

// command runs a slash command and reports whether the session should end.
func (s *chatSession) command(ctx context.Context, text string) bool {
	fields := strings.Fields(text)
	name, args := strings.ToLower(strings.TrimPrefix(fields[0], "/")), fields[1:]

	switch name {
	case "quit", "q", "exit":
		return true

	case "history":
		s.printed = 0
		s.flush()

	case "export":
		s.export(args)

	case "attach", "upload":
		if s.view != nav.Hive {
			fmt.Fprintln(s.out, errorStyle.Render("Uploads are not available here."))
			return false
		}
		if len(args) == 0 {
			fmt.Fprintln(s.out, errorStyle.Render("Usage: /attach <file>"))
			return false
		}
		s.sim.Attach(strings.Join(args, " "))
		s.wait(ctx)

	case "help", "h", "?":
		fmt.Fprintln(s.out, mutedStyle.Render("/export [md|json] [path]  /attach <file>  /history  /quit"))

	default:
		fmt.Fprintln(s.out, errorStyle.Render(fmt.Sprintf("Unknown command: /%s (try /help)", name)))
	}
	return false
}

func (s *chatSession) export(args []string) {
	format, path := "", ""
	if len(args) > 0 {
		format = args[0]
	}
	if len(args) > 1 {
		path = args[1]
	}

	exporter, err := export.ForFormat(format, export.DefaultOptions())
	if err == nil {
		title := s.cfg.Agent.Name
		if s.view == nav.Hive {
			title = "Hive"
		}
		var written string
		written, err = export.ExportToFile(&export.Transcript{
			Title:     title,
			View:      s.view,
			SessionID: s.info.ID,
			CreatedAt: time.Now(),
			Messages:  s.sim.Store().List(),
		}, exporter, path, nil)
		if err == nil {
			fmt.Fprintln(s.out, successStyle.Render("[OK] Exported to: "+written))
			return
		}
	}
	s.log.Warn("export failed", zap.Error(err))
	fmt.Fprintln(s.out, errorStyle.Render("[FAIL] "+err.Error()))
}

// wait prints replies as they land until nothing is pending.
func (s *chatSession) wait(ctx context.Context) {
	if s.sim.Pending() > 0 {
		label := s.cfg.Agent.Name
		if s.view == nav.Hive {
			label = s.cfg.Hive.Assistant
		}
		fmt.Fprintln(s.out, mutedStyle.Render(label+" is typing..."))
	}

	deadline := time.NewTimer(s.timeout)
	defer deadline.Stop()

	for s.sim.Pending() > 0 || s.sim.Scanning() > 0 {
		select {
		case _, ok := <-s.sim.Updates():
			if !ok {
				return
			}
			s.flush()
		case <-deadline.C:
			s.log.Warn("reply wait timed out")
			return
		case <-ctx.Done():
			return
		}
	}
	s.flush()
}

// flush prints every message not yet shown.
func (s *chatSession) flush() {
	msgs := s.sim.Store().Since(s.printed)
	for _, msg := range msgs {
		fmt.Fprintln(s.out, formatLine(msg))
	}
	s.printed += len(msgs)
}

func formatLine(msg model.Message) string {
	label := labelStyle.Render(msg.SenderLabel)
	if msg.IsUser() {
		label = userStyle.Render(msg.SenderLabel)
	}
	return mutedStyle.Render("["+msg.Clock()+"]") + " " + label + ": " + msg.Content
}
