package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domain "github.com/trexxeseba/amadolibros-web/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // SUCCESS
	colorYellow = 0xF1C40F // WARNING
	colorRed    = 0xE74C3C // ERROR

	maxLogLines       = 10
	maxDescriptionLen = 4000
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendSyncReport posts the report as a single embed.
func (d *DiscordNotifier) SendSyncReport(ctx context.Context, report *domain.SyncReport) error {
	if report == nil {
		return errors.New("nil sync report")
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{buildEmbed(report)}})
}

func buildEmbed(r *domain.SyncReport) discordEmbed {
	s := r.Stats
	embed := discordEmbed{
		Title:       "Catalog sync " + string(r.Status),
		Color:       statusColor(r.Status),
		Description: describe(r),
		Fields: []discordEmbedField{
			{Name: "Total", Value: strconv.Itoa(s.Total), Inline: true},
			{Name: "Reported", Value: strconv.Itoa(s.TotalReported), Inline: true},
			{Name: "Active", Value: strconv.Itoa(s.Active), Inline: true},
			{Name: "Paused", Value: strconv.Itoa(s.Paused), Inline: true},
			{Name: "Failed pages", Value: strconv.Itoa(s.FailedPages), Inline: true},
			{Name: "Failed batches", Value: strconv.Itoa(s.FailedBatches), Inline: true},
		},
	}
	if len(r.Missing) > 0 {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:  "Missing",
			Value: strings.Join(r.Missing, ", "),
		})
	}
	if !r.StartedAt.IsZero() {
		embed.Timestamp = r.StartedAt.UTC().Format(time.RFC3339)
	}
	return embed
}

// describe renders the error and the tail of the log as a code block.
func describe(r *domain.SyncReport) string {
	var b strings.Builder
	if r.Error != "" {
		b.WriteString("**")
		b.WriteString(r.Error)
		b.WriteString("**\n")
	}

	logs := r.Logs
	if len(logs) > maxLogLines {
		logs = logs[len(logs)-maxLogLines:]
	}
	if len(logs) > 0 {
		b.WriteString("```\n")
		b.WriteString(strings.Join(logs, "\n"))
		b.WriteString("\n```")
	}

	out := b.String()
	if len(out) > maxDescriptionLen {
		out = out[:maxDescriptionLen-3] + "..."
	}
	return out
}

func statusColor(s domain.SyncStatus) int {
	switch s {
	case domain.SyncSuccess:
		return colorGreen
	case domain.SyncWarning:
		return colorYellow
	default:
		return colorRed
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return errors.New("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
