package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seller-workspace/internal/service"
)

var buyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "列出买家",
	Long: `列出买家，可以按姓名或国家搜索，并按等级筛选。

等级: all / important / spam`,
	Args: cobra.NoArgs,
	RunE: runBuyers,
}

var selectCmd = &cobra.Command{
	Use:   "select <buyer-id>",
	Short: "切换当前会话并显示聊天记录",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

func init() {
	buyersCmd.Flags().String("search", "", "搜索姓名或国家")
	buyersCmd.Flags().String("level", "all", "买家等级")
	rootCmd.AddCommand(buyersCmd, selectCmd)
}

func runBuyers(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	level, _ := cmd.Flags().GetString("level")

	ctx, cancel := requestContext(cmd)
	defer cancel()

	buyers, err := newClient().ListBuyers(ctx, search, level)
	if err != nil {
		return err
	}
	if len(buyers) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "没有匹配的买家")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, b := range buyers {
		marker := " "
		if b.Selected {
			marker = "*"
		}
		unread := ""
		if b.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d)", b.UnreadCount)
		}
		fmt.Fprintf(out, "%s %-3s %s %s%s  %s\n", marker, b.ID, b.Flag, b.Name, unread, b.Country)
	}
	return nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	snap, err := newClient().SelectBuyer(ctx, args[0])
	if err != nil {
		return err
	}
	printSnapshot(cmd, snap)
	return nil
}

// printSnapshot 打印当前会话
func printSnapshot(cmd *cobra.Command, snap *service.Snapshot) {
	out := cmd.OutOrStdout()
	if snap.Buyer == nil {
		fmt.Fprintf(out, "买家 %s 不存在\n", snap.SelectedBuyerID)
		return
	}
	fmt.Fprintf(out, "%s %s · %s\n", snap.Buyer.Flag, snap.Buyer.Name, snap.Buyer.Country)
	fmt.Fprintln(out, strings.Repeat("─", 40))
	for _, m := range snap.Messages {
		fmt.Fprintf(out, "[%s] %-6s %s\n", formatTime(m.Timestamp), m.Label, m.Content)
		for _, a := range m.Attachments {
			fmt.Fprintf(out, "        📎 %s %s\n", a.Name, a.URL)
		}
	}
}
