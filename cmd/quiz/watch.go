package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
	"github.com/Michel-2503/Kopfrechnen/pkg/network"
	"github.com/spf13/cobra"
)

const watchPingInterval = 5 * time.Second

func newWatchCommand() *cobra.Command {
	var server, token string
	cmd := &cobra.Command{
		Use:   "watch SESSION_ID",
		Short: "Follow a session on a quiz server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			streamURL, err := eventsURL(server, args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, cmd.OutOrStdout(), streamURL, token)
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:9090", "Quiz server address")
	cmd.Flags().StringVar(&token, "token", "", "Bearer token of the session owner")
	return cmd
}

// eventsURL turns the server's http address into the session's ws events address.
func eventsURL(server string, sessionID string) (string, error) {
	u, err := url.Parse(server)
	if err != nil {
		return "", fmt.Errorf("failed to parse server address: %v", err)
	}
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported server scheme %q", u.Scheme)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/sessions/" + url.PathEscape(sessionID) + "/events"
	return u.String(), nil
}

func watch(ctx context.Context, out io.Writer, streamURL string, token string) error {
	snapshots := make(chan *messages.SessionView)
	client := network.NewStreamClient(network.NewStreamClientOptions{
		URL:       streamURL,
		Token:     token,
		Snapshots: snapshots,
	})
	if err := client.Connect(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- client.HandleMessages(ctx)
	}()

	ticker := time.NewTicker(watchPingInterval)
	defer ticker.Stop()
	for {
		select {
		case view := <-snapshots:
			printView(out, view)
		case <-ticker.C:
			if err := client.Ping(ctx); err != nil {
				log.Warn("Failed to ping server: %v", err)
				continue
			}
			log.Debug("Round trip %dms", client.RTT())
		case err := <-done:
			return err
		}
	}
}

func printView(out io.Writer, view *messages.SessionView) {
	line := fmt.Sprintf("[%s] level %d/%d question %d/%d lives %d score %d",
		view.Phase, view.Level, view.MaxLevel, view.QuestionIndex, view.QuestionsPerLevel, view.Lives, view.Score)
	if view.Problem != "" {
		line += "  " + view.Problem
	}
	if view.IsAnswered && view.Answer != nil {
		line += fmt.Sprintf(" -> %d %s", *view.Answer, view.Feedback)
	}
	fmt.Fprintln(out, line)
}
