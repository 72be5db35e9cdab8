package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/slack-standup-bot/internal/slack"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	channelService contract.ChannelService
	signingSecret  string
}

func New(channelService contract.ChannelService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		channelService: channelService,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdStart:
		return h.handleStart(ctx, slashCmd)
	case slackcmd.CmdStop:
		return h.handleStop(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdAdd:
		return h.handleAddUser(cmd, slashCmd)
	case slackcmd.CmdRemove:
		return h.handleRemoveUser(cmd, slashCmd)
	case slackcmd.CmdEnable:
		return h.handleSetUserEnabled(cmd, slashCmd, true)
	case slackcmd.CmdDisable:
		return h.handleSetUserEnabled(cmd, slashCmd, false)
	case slackcmd.CmdList:
		return h.handleListUsers(slashCmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdResume:
		return h.handleResume(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleStart(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.Start(channel.ID); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return h.createErrorResponse("A standup is already running in this channel")
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to start standup: %v", err))
	}

	if err := h.channelService.StartTodayStandup(ctx, channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to create today's standups: %v", err))
	}

	pending, err := h.channelService.PendingStandups(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to check today's standups")
	}

	if len(pending) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         "🌅 Standup started, but nobody is in it yet. Use `/standup add @user` to add team members.",
		}
	}

	first, err := h.userMention(channel.ID, pending[0].UserID)
	if err != nil {
		return h.createErrorResponse("Failed to resolve first user")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🌅 *Daily Standup* started with %d participants.\nFirst up: %s", len(pending), first),
	}
}

func (h *SlackHandler) handleStop(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.Stop(channel.ID); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return h.createErrorResponse("No standup is running in this channel")
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to stop standup: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "🛑 Standup stopped.",
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	standups, err := h.channelService.TodayStandups(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to get today's standups")
	}

	if len(standups) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No standups for today yet. Use `/standup start` to begin.",
		}
	}

	complete, err := h.channelService.IsComplete(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to check standup completion")
	}

	var completed, inProgress, pending int
	for _, standup := range standups {
		switch standup.Status {
		case domain.StandupCompleted:
			completed++
		case domain.StandupInProgress:
			inProgress++
		default:
			pending++
		}
	}

	var status strings.Builder
	fmt.Fprintf(&status, "*Standup status (%s):*\n", channel.State)
	fmt.Fprintf(&status, "✅ Completed: %d\n", completed)
	fmt.Fprintf(&status, "✏️ In progress: %d\n", inProgress)
	fmt.Fprintf(&status, "⏳ Pending: %d\n", pending)

	if current, err := h.channelService.CurrentStandup(channel.ID); err == nil && current != nil {
		if mention, err := h.userMention(channel.ID, current.UserID); err == nil {
			fmt.Fprintf(&status, "Currently reporting: %s\n", mention)
		}
	}

	if complete {
		status.WriteString("🎉 Everyone is done for today!")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         status.String(),
	}
}

func (h *SlackHandler) handleAddUser(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/standup add @user`")
	}

	userID := parseUserMention(cmd.Args[0])

	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.AddUser(channel.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to add user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> was added to the standup!", userID),
	}
}

func (h *SlackHandler) handleRemoveUser(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/standup remove @user`")
	}

	userID := parseUserMention(cmd.Args[0])

	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.RemoveUser(channel.ID, userID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove user: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ <@%s> was removed from the standup.", userID),
	}
}

func (h *SlackHandler) handleSetUserEnabled(cmd *slackcmd.Command, slashCmd *slack.SlashCommand, enabled bool) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Please mention the user: `/standup %s @user`", cmd.Type))
	}

	userID := parseUserMention(cmd.Args[0])

	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.SetUserEnabled(channel.ID, userID, enabled); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update user: %v", err))
	}

	verb := "enabled for"
	if !enabled {
		verb = "disabled from"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ <@%s> was %s the standup.", userID, verb),
	}
}

func (h *SlackHandler) handleListUsers(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	users, err := h.channelService.ListUsers(channel.ID)
	if err != nil {
		return h.createErrorResponse("Failed to list users")
	}

	if len(users) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "Nobody is in the standup. Use `/standup add @user` to add team members.",
		}
	}

	var userList strings.Builder
	userList.WriteString("*Standup members:*\n")
	for i, user := range users {
		suffix := ""
		if user.IsBot {
			suffix = " (bot, skipped)"
		} else if !user.IsEnabled {
			suffix = " (disabled)"
		}
		userList.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, user.DisplayName, suffix))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         userList.String(),
	}
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Use: `/standup config time HH:MM` or `/standup config days 1,2,4,5`")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.UpdateSchedule(channel.ID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to update configuration: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.PauseSchedule(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to pause standups: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "⏸️ Automatic standups paused.",
	}
}

func (h *SlackHandler) handleResume(slashCmd *slack.SlashCommand) *slack.Msg {
	channel, _, err := h.channelService.SetupChannel(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		return h.createErrorResponse("Failed to check channel")
	}

	if err := h.channelService.ResumeSchedule(channel.ID); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to resume standups: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "▶️ Automatic standups resumed.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) userMention(channelID, userID int64) (string, error) {
	users, err := h.channelService.ListUsers(channelID)
	if err != nil {
		return "", err
	}

	for _, user := range users {
		if user.ID == userID {
			return fmt.Sprintf("<@%s>", user.SlackUserID), nil
		}
	}

	return "", fmt.Errorf("user %d not found in channel %d", userID, channelID)
}

// parseUserMention extracts the user ID from a mention like <@U12345|name>
func parseUserMention(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if i := strings.Index(userID, "|"); i >= 0 {
		userID = userID[:i]
	}
	return userID
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
