package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hoangNguyenDev3/WanderSphere/internal/models"
)

var postImages []string

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Create, show, edit, delete or comment on posts",
}

var postCreateCmd = &cobra.Command{
	Use:   "create <text>",
	Short: "Publish a new post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireViewer(); err != nil {
			return err
		}

		var imageURLs []string
		for _, path := range postImages {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			contentType := mime.TypeByExtension(filepath.Ext(path))
			url, err := svc.UploadImage(cmd.Context(), filepath.Base(path), contentType, f)
			f.Close()
			if err != nil {
				return err
			}
			imageURLs = append(imageURLs, url)
		}

		postID, err := svc.CreatePost(cmd.Context(), args[0], imageURLs)
		if err != nil {
			return err
		}
		fmt.Printf("Created post %d\n", postID)
		return nil
	},
}

var postShowCmd = &cobra.Command{
	Use:   "show <post-id>",
	Short: "Show a post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		view, err := svc.PostDetail(cmd.Context(), postID)
		if err != nil {
			return err
		}
		printPost(view.Post)
		for _, c := range view.Comments {
			fmt.Printf("    @%s: %s\n", c.User.UserName, c.ContentText)
		}
		return nil
	},
}

var postEditCmd = &cobra.Command{
	Use:   "edit <post-id> <text>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		text := args[1]
		return svc.EditPost(cmd.Context(), postID, models.EditPostRequest{ContentText: &text})
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		return svc.DeletePost(cmd.Context(), postID)
	},
}

var postCommentCmd = &cobra.Command{
	Use:   "comment <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}
		post, err := svc.AddComment(cmd.Context(), postID, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Comment added; post now has %d comments\n", len(post.Comments))
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Toggle your like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := requireViewer(); err != nil {
			return err
		}
		postID, err := parsePostID(args[0])
		if err != nil {
			return err
		}

		view, err := svc.PostDetail(cmd.Context(), postID)
		if err != nil {
			return err
		}
		liked := svc.ToggleLike(cmd.Context(), &view.Post)
		if liked {
			fmt.Printf("Liked post %d (%d likes)\n", postID, view.Post.LikeCount())
		} else {
			fmt.Printf("Unliked post %d (%d likes)\n", postID, view.Post.LikeCount())
		}
		return nil
	},
}

func parsePostID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", arg)
	}
	return id, nil
}

func init() {
	postCreateCmd.Flags().StringSliceVar(&postImages, "image", nil, "image file to attach (repeatable, max 4)")
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postShowCmd)
	postCmd.AddCommand(postEditCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postCommentCmd)
}
