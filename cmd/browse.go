package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/go-furtrack/filter"
	"github.com/s0up4200/go-furtrack/furtrack"
	"github.com/s0up4200/go-furtrack/tags"
)

func init() {
	postsCmd.Flags().IntVarP(&page, "page", "p", 0, "result page (0 is the first)")
	postsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "expr filter applied to the fetched posts")
	uploadsCmd.Flags().IntVarP(&page, "page", "p", 0, "result page (0 is the first)")
	uploadsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "expr filter applied to the fetched posts")
	likesCmd.Flags().IntVarP(&page, "page", "p", 0, "result page (0 is the first)")
	likesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "expr filter applied to the fetched posts")
	albumCmd.Flags().IntVarP(&page, "page", "p", 0, "result page (0 is the first)")

	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(postsCmd)
	rootCmd.AddCommand(uploadsCmd)
	rootCmd.AddCommand(likesCmd)
	rootCmd.AddCommand(albumCmd)
	rootCmd.AddCommand(thumbCmd)
	rootCmd.AddCommand(parseCmd)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var tagCmd = &cobra.Command{
	Use:   "tag <name>",
	Short: "Show the index entry for a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := client.GetTagInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.GetUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

var postCmd = &cobra.Command{
	Use:   "post <id>",
	Short: "Show a post and its tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post ID %q", args[0])
		}
		resp, err := client.GetPost(cmd.Context(), postID)
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var postsCmd = &cobra.Command{
	Use:   "posts <tag>",
	Short: "List posts carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := client.GetPostsByTag(cmd.Context(), args[0], page)
		if err != nil {
			return err
		}
		return printFilteredPosts(posts)
	},
}

var uploadsCmd = &cobra.Command{
	Use:   "uploads <username>",
	Short: "List posts uploaded by a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := client.GetPostsByUser(cmd.Context(), args[0], page)
		if err != nil {
			return err
		}
		return printFilteredPosts(posts)
	},
}

var likesCmd = &cobra.Command{
	Use:   "likes <username>",
	Short: "List posts a user has liked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := client.GetLikes(cmd.Context(), args[0], page)
		if err != nil {
			return err
		}
		return printFilteredPosts(posts)
	},
}

var albumCmd = &cobra.Command{
	Use:   "album <username> <album-id>",
	Short: "Show one page of a user's album",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		album, err := client.GetAlbum(cmd.Context(), args[0], args[1], page)
		if err != nil {
			return err
		}
		return printJSON(album)
	},
}

var thumbCmd = &cobra.Command{
	Use:   "thumb <id>...",
	Short: "Resolve thumbnail URLs for one or more posts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postIDs := make([]int64, 0, len(args))
		for _, arg := range args {
			postID, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post ID %q", arg)
			}
			postIDs = append(postIDs, postID)
		}

		thumbs, err := client.GetThumbnails(cmd.Context(), postIDs)
		if err != nil {
			return err
		}
		return printJSON(thumbs)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <tag>...",
	Short: "Classify raw tag strings by their type prefix (offline)",
	Args:  cobra.MinimumNArgs(1),
	// Classification is pure; don't require config or a client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, raw := range args {
			parsed := tags.Parse(raw)
			fmt.Printf("%s\t%s\t%s\n", raw, parsed.Type, parsed.Value)
		}
		return nil
	},
}

// printFilteredPosts applies the --filter expression, if any, and prints
// the surviving posts.
func printFilteredPosts(posts []furtrack.Post) error {
	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		posts = f.Apply(posts)
	}

	if len(posts) == 0 {
		fmt.Println("No posts found.")
		return nil
	}
	return printJSON(posts)
}
