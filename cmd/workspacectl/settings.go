package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"seller-workspace/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "查看或重置客服 agent 设置",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前设置",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		s, err := newClient().AgentSettings(ctx)
		if err != nil {
			return err
		}
		printSettings(cmd, s)
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "恢复默认设置",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		s, err := newClient().ResetAgentSettings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ 已恢复默认设置")
		printSettings(cmd, s)
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func printSettings(cmd *cobra.Command, s *model.AgentSettings) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "AI 客服:   %s\n", onOff(s.AIEnabled))
	fmt.Fprintf(out, "响应延迟:  %ds\n", s.ResponseDelay)
	fmt.Fprintf(out, "沟通风格:  %s\n", s.CommunicationStyle)
	fmt.Fprintf(out, "回复长度:  %s\n", s.ReplyLength)

	fmt.Fprintln(out, "买家诉求问题:")
	for _, q := range s.DefaultQuestions {
		fmt.Fprintf(out, "  [%s] %-3s %s\n", check(q.Enabled), q.ID, q.Text)
	}
	fmt.Fprintln(out, "自动回复:")
	for _, q := range s.AutoReplyQuestions {
		fmt.Fprintf(out, "  [%s] %s\n", check(q.Enabled), q.ID)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func check(v bool) string {
	if v {
		return "x"
	}
	return " "
}
