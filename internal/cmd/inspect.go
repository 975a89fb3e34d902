package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/naslab/fwimage"
)

func init() {
	inspectCmd.Flags().AddFlagSet(&processFlags)
	rootCmd.AddCommand(inspectCmd)
}

type imageFile struct {
	File *string
	*fwimage.Info
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file...]",
	Short: "Inspect firmware images",
	Long:  "Inspect firmware images given as arguments, or stdin if none is given",
	Run: func(cmd *cobra.Command, args []string) {
		processFiles(args, func(filename *string, input io.Reader) interface{} {
			data, err := io.ReadAll(input)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Unable to read firmware image: %v\n", err)
				os.Exit(2)
			}

			image, err := fwimage.ParseImage(data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid firmware image: %v\n", err)
				os.Exit(3)
			}

			return imageFile{
				File: filename,
				Info: image.Info(),
			}
		})
	},
}
