package cmd

import (
	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/naslab/fwimage"
)

const configFileName = "fwimage"

// reads in config file, uses defaults if not found
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(configFileName)
	}

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file: %s", viper.ConfigFileUsed())
	} else {
		log.Debugf("%s", err.Error())
		log.Debugf("using built-in defaults")
	}

	viper.SetDefault("signature", fwimage.DefaultSignature)
	viper.SetDefault("compat", int(fwimage.DefaultCompatID))
	viper.SetDefault("subcompat", int(fwimage.DefaultSubcompatID))
}
