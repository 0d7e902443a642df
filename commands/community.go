package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pathwise-app/pathwise_client/services"
)

func init() {
	communityCmd.AddCommand(
		communityPostsCmd,
		communityPostCmd,
		communityLikeCmd,
		communityRepliesCmd,
		communityReplyCmd,
		communityLikeReplyCmd,
	)
	rootCmd.AddCommand(communityCmd)
}

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Read and join the community feed",
}

var communityPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List recent community posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		resp, err := communitySvc.Posts(cmd.Context())
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}

var communityPostCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Publish a post to the feed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		post, err := communitySvc.CreatePost(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return renderError(err)
		}
		return printJSON(post)
	},
}

var communityLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle your like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		resp, err := communitySvc.LikePost(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}

var communityRepliesCmd = &cobra.Command{
	Use:   "replies <post-id>",
	Short: "List replies to a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		resp, err := communitySvc.Replies(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}

var communityReplyCmd = &cobra.Command{
	Use:   "reply <post-id> <content>",
	Short: "Reply to a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		reply, err := communitySvc.CreateReply(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return renderError(err)
		}
		return printJSON(reply)
	},
}

var communityLikeReplyCmd = &cobra.Command{
	Use:   "like-reply <reply-id>",
	Short: "Toggle your like on a reply",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := bootServices()
		if err != nil {
			return err
		}
		communitySvc := ctx.Service(services.COMMUNITY_SVC).(*services.CommunityService)

		resp, err := communitySvc.LikeReply(cmd.Context(), args[0])
		if err != nil {
			return renderError(err)
		}
		return printJSON(resp)
	},
}
