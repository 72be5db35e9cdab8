package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart   CommandType = "start"
	CmdStop    CommandType = "stop"
	CmdStatus  CommandType = "status"
	CmdAdd     CommandType = "add"
	CmdRemove  CommandType = "remove"
	CmdEnable  CommandType = "enable"
	CmdDisable CommandType = "disable"
	CmdList    CommandType = "list"
	CmdConfig  CommandType = "config"
	CmdPause   CommandType = "pause"
	CmdResume  CommandType = "resume"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "start":
		cmd.Type = CmdStart
	case "stop":
		cmd.Type = CmdStop
	case "status":
		cmd.Type = CmdStatus
	case "add":
		cmd.Type = CmdAdd
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "remove", "rm":
		cmd.Type = CmdRemove
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "enable":
		cmd.Type = CmdEnable
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "disable":
		cmd.Type = CmdDisable
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "list", "ls":
		cmd.Type = CmdList
	case "config":
		cmd.Type = CmdConfig
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Standup:*
• ` + "`/standup start`" + ` - Start today's standup now
• ` + "`/standup stop`" + ` - Stop the running standup
• ` + "`/standup status`" + ` - Show today's standup progress

*Manage Members:*
• ` + "`/standup add @user`" + ` - Add member to the standup
• ` + "`/standup remove @user`" + ` - Remove member from the standup
• ` + "`/standup enable @user`" + ` - Re-enable a member
• ` + "`/standup disable @user`" + ` - Skip a member until re-enabled
• ` + "`/standup list`" + ` - List all members

*Configuration:*
• ` + "`/standup config time HH:MM`" + ` - Set kickoff time (ex: 09:30)
• ` + "`/standup config days 1,2,4,5`" + ` - Set active days (1=Mon, 2=Tue, 3=Wed, 4=Thu, 5=Fri, 6=Sat, 7=Sun)

*Control:*
• ` + "`/standup pause`" + ` - Pause automatic standups
• ` + "`/standup resume`" + ` - Resume automatic standups`
}
