package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"seller-workspace/internal/translation"
)

var sendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "向当前买家发送消息",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSend,
}

var productCmd = &cobra.Command{
	Use:   "product <product-id>",
	Short: "向当前买家推荐商品",
	Args:  cobra.ExactArgs(1),
	RunE:  runProduct,
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "显示当前买家的回复建议",
	Args:  cobra.NoArgs,
	RunE:  runSuggestions,
}

var suggestSendCmd = &cobra.Command{
	Use:   "suggest-send <suggestion-id>",
	Short: "发送一条回复建议",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggestSend,
}

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "翻译文本",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTranslate,
}

func init() {
	suggestionsCmd.Flags().Bool("regenerate", false, "先重新生成再显示")
	translateCmd.Flags().String("from", translation.DefaultLanguage, "源语言代码")
	translateCmd.Flags().String("to", "", "目标语言代码")
	_ = translateCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(sendCmd, productCmd, suggestionsCmd, suggestSendCmd, translateCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	snap, err := newClient().SendMessage(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	printSnapshot(cmd, snap)
	return nil
}

func runProduct(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	snap, err := newClient().SendProduct(ctx, args[0])
	if err != nil {
		return err
	}
	printSnapshot(cmd, snap)
	return nil
}

func runSuggestions(cmd *cobra.Command, args []string) error {
	regenerate, _ := cmd.Flags().GetBool("regenerate")

	ctx, cancel := requestContext(cmd)
	defer cancel()

	sugs, err := newClient().Suggestions(ctx, regenerate)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sugs) == 0 {
		fmt.Fprintln(out, "暂无回复建议")
		return nil
	}
	for _, s := range sugs {
		fmt.Fprintf(out, "%s [%s]\n    %s\n", s.ID, s.Type, s.Content)
	}
	return nil
}

func runSuggestSend(cmd *cobra.Command, args []string) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	snap, err := newClient().SendSuggestion(ctx, args[0])
	if err != nil {
		return err
	}
	printSnapshot(cmd, snap)
	return nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	ctx, cancel := requestContext(cmd)
	defer cancel()

	resp, err := newClient().Translate(ctx, translation.Request{
		Text:           strings.Join(args, " "),
		SourceLanguage: from,
		TargetLanguage: to,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.TranslatedText)
	return nil
}
