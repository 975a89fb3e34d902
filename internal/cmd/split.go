package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/naslab/fwimage"
)

var (
	splitKernel   string
	splitInitrd   string
	splitDefaults string
)

func init() {
	flags := splitCmd.Flags()
	flags.StringVarP(&splitKernel, "kernel", "k", "", "write the kernel payload to this file")
	flags.StringVarP(&splitInitrd, "initrd", "i", "", "write the initrd payload to this file")
	flags.StringVarP(&splitDefaults, "defaults", "d", "", "write the defaults payload to this file")

	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split image",
	Short: "Split a firmware image into its payloads",
	Long: "Verify a firmware image and extract its payloads. Checksum mismatches " +
		"are reported as warnings and extraction continues, so corrupted images " +
		"can still be recovered.",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("unable to read firmware image: %v", err)
		}

		image, err := fwimage.ParseImage(data)
		if err != nil {
			log.Fatalf("invalid firmware image: %v", err)
		}

		reportChecksum("kernel", image.VerifyKernelChecksum())
		reportChecksum("initrd", image.VerifyInitrdChecksum())
		if image.HasDefaults() {
			reportChecksum("defaults", image.VerifyDefaultsChecksum())
		}

		if !fwimage.LooksLikeBootloaderImage(image.Kernel()) {
			log.Warnf("kernel payload does not look like a bootloader-wrapped image")
		}
		if !fwimage.LooksLikeBootloaderImage(image.Initrd()) {
			log.Warnf("initrd payload does not look like a bootloader-wrapped image")
		}

		extractSection(image, fwimage.SectionKernel, splitKernel)
		extractSection(image, fwimage.SectionInitrd, splitInitrd)
		extractSection(image, fwimage.SectionDefaults, splitDefaults)
	},
}

func reportChecksum(section string, ok bool) {
	if ok {
		log.Infof("%s checksum OK", section)
	} else {
		log.Warnf("%s checksum mismatch", section)
	}
}

// extractSection writes one payload to the requested path. Failures abort:
// unlike checksum mismatches, not being able to deliver requested output is
// fatal.
func extractSection(image *fwimage.Image, section fwimage.Section, filename string) {
	if filename == "" {
		return
	}

	blob, err := image.Extract(section)
	if err != nil {
		log.Fatalf("unable to extract %s: %v", section, err)
	}
	if blob == nil {
		log.Warnf("no %s payload in this image, skipping %s", section, filename)
		return
	}

	if err := os.WriteFile(filename, blob, 0644); err != nil {
		log.Fatalf("unable to write %s: %v", filename, err)
	}
	log.Infof("wrote %s (%d bytes)", filename, len(blob))
}
