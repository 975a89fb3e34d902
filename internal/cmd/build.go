package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/naslab/fwimage"
)

var (
	buildKernel    string
	buildInitrd    string
	buildDefaults  string
	buildOutput    string
	buildProduct   uint8
	buildCustom    uint8
	buildModel     uint8
	buildCompat    uint8
	buildSubcompat uint8
	buildSignature string
)

func init() {
	flags := buildCmd.Flags()
	flags.StringVarP(&buildKernel, "kernel", "k", "", "bootloader-wrapped kernel image")
	flags.StringVarP(&buildInitrd, "initrd", "i", "", "bootloader-wrapped initrd image")
	flags.StringVarP(&buildDefaults, "defaults", "d", "", "optional defaults archive")
	flags.StringVarP(&buildOutput, "output", "o", "", "output firmware image")
	flags.Uint8VarP(&buildProduct, "product", "p", 0, "product identifier")
	flags.Uint8VarP(&buildCustom, "custom", "c", 0, "OEM/custom identifier")
	flags.Uint8VarP(&buildModel, "model", "m", 0, "model identifier")
	flags.Uint8Var(&buildCompat, "compat", fwimage.DefaultCompatID, "compatibility class")
	flags.Uint8Var(&buildSubcompat, "subcompat", fwimage.DefaultSubcompatID, "compatibility subclass")
	flags.StringVarP(&buildSignature, "signature", "s", fwimage.DefaultSignature, "firmware signature name or raw 7 bytes")

	for _, required := range []string{"kernel", "initrd", "output", "product", "custom", "model"} {
		cobra.MarkFlagRequired(flags, required)
	}

	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a firmware image from kernel, initrd and optional defaults",
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("signature") {
			buildSignature = viper.GetString("signature")
		}
		if !cmd.Flags().Changed("compat") {
			buildCompat = uint8(viper.GetInt("compat"))
		}
		if !cmd.Flags().Changed("subcompat") {
			buildSubcompat = uint8(viper.GetInt("subcompat"))
		}

		kernel := readBlob(buildKernel, "kernel")
		if !fwimage.LooksLikeBootloaderImage(kernel) {
			log.Fatalf("%s does not look like a bootloader-wrapped kernel image", buildKernel)
		}

		initrd := readBlob(buildInitrd, "initrd")
		if !fwimage.LooksLikeBootloaderImage(initrd) {
			log.Fatalf("%s does not look like a bootloader-wrapped initrd image", buildInitrd)
		}

		var defaults []byte
		if buildDefaults != "" {
			defaults = readBlob(buildDefaults, "defaults")
		}

		image, err := fwimage.Assemble(&fwimage.Build{
			Kernel:      kernel,
			Initrd:      initrd,
			Defaults:    defaults,
			ProductID:   buildProduct,
			CustomID:    buildCustom,
			ModelID:     buildModel,
			CompatID:    buildCompat,
			SubcompatID: buildSubcompat,
			Signature:   buildSignature,
		})
		if err != nil {
			log.Fatalf("unable to build firmware image: %v", err)
		}

		// The image is complete before the output file is touched, so a
		// failed build never leaves a partial image behind.
		if err := os.WriteFile(buildOutput, image, 0644); err != nil {
			log.Fatalf("unable to write %s: %v", buildOutput, err)
		}
		log.Infof("wrote %s (%d bytes)", buildOutput, len(image))
	},
}

func readBlob(filename, role string) []byte {
	blob, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("unable to read %s: %v", role, err)
	}
	return blob
}
