package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show your newsfeed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireViewer(); err != nil {
			return err
		}
		posts, err := svc.Home(cmd.Context())
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			fmt.Println("Your feed is empty. Follow some people!")
			return nil
		}
		for _, p := range posts {
			printPost(p)
		}
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile <user-id>",
	Short: "Show a user's profile and posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		view, err := svc.Profile(cmd.Context(), userID)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", view.User.UserName, view.User.FullName())
		fmt.Printf("%d posts · %d followers · %d following\n",
			len(view.Posts), view.FollowerCount, view.FollowingCount)
		if !view.IsOwnProfile {
			if view.IsFollowing {
				fmt.Println("You follow this user")
			} else {
				fmt.Println("You don't follow this user")
			}
		}
		for _, p := range view.Posts {
			printPost(p)
		}
		return nil
	},
}

func printPost(p models.PostWithUser) {
	fmt.Printf("\n#%d @%s", p.PostID, p.User.UserName)
	if p.Degraded {
		fmt.Print(" (partially unavailable)")
	}
	fmt.Println()
	if p.ContentText != "" {
		fmt.Println(p.ContentText)
	}
	for _, img := range p.ContentImagePath {
		fmt.Println("  [image]", img)
	}
	liked := ""
	if p.IsLiked {
		liked = " · liked by you"
	}
	fmt.Printf("  %d likes · %d comments%s\n", p.LikeCount(), len(p.Comments), liked)
}
