package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoangNguyenDev3/WanderSphere/internal/feed"
)

var followersCmd = &cobra.Command{
	Use:   "followers [user-id]",
	Short: "List a user's followers (defaults to you)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := userIDArg(args)
		if err != nil {
			return err
		}
		col, err := svc.Followers(cmd.Context(), userID)
		if err != nil {
			return err
		}
		printFollowList(col)
		return nil
	},
}

var followingCmd = &cobra.Command{
	Use:   "following [user-id]",
	Short: "List who a user follows (defaults to you)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := userIDArg(args)
		if err != nil {
			return err
		}
		col, err := svc.Following(cmd.Context(), userID)
		if err != nil {
			return err
		}
		printFollowList(col)
		return nil
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return toggleFollow(cmd, args, true) },
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <user-id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return toggleFollow(cmd, args, false) },
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := svc.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if col.Len() == 0 {
			fmt.Println("No users found")
			return nil
		}
		printFollowList(col)
		return nil
	},
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "Show suggested users to follow",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireViewer(); err != nil {
			return err
		}
		box, err := svc.Suggestions(cmd.Context())
		if err != nil {
			return err
		}
		users := box.Users()
		if len(users) == 0 {
			fmt.Println("No new users to suggest")
			return nil
		}
		for _, u := range users {
			fmt.Printf("  %d  @%s (%s)\n", u.UserID, u.UserName, u.FullName())
		}
		return nil
	},
}

func toggleFollow(cmd *cobra.Command, args []string, follow bool) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}
	if targetID == viewer.UserID {
		return fmt.Errorf("you cannot follow yourself")
	}

	if follow {
		return svc.Follow(cmd.Context(), targetID)
	}
	return svc.Unfollow(cmd.Context(), targetID)
}

func printFollowList(col *feed.FollowCollection) {
	for _, u := range col.Users {
		label := "follow"
		if u.IsFollowing {
			label = "following"
		}
		degraded := ""
		if u.Degraded {
			degraded = " (profile unavailable)"
		}
		fmt.Printf("  %d  @%s (%s) [%s]%s\n", u.UserID, u.UserName, u.FullName(), label, degraded)
	}
}

func userIDArg(args []string) (int64, error) {
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid user id %q", args[0])
		}
		return id, nil
	}
	viewer, err := requireViewer()
	if err != nil {
		return 0, err
	}
	return viewer.UserID, nil
}
