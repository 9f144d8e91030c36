package seqbench

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	//OutputPathField Field name of output-path config
	OutputPathField = "output-path"
	//MongoDBURLField Field name of mongodb-url config
	MongoDBURLField = "mongodb-url"
	//MongoDBDatabaseField Field name of mongodb-database config
	MongoDBDatabaseField = "mongodb-database"
	//MongoDBCollectionField Field name of mongodb-collection config
	MongoDBCollectionField = "mongodb-collection"

	//SweepDefaultField Field name of sweep.default config
	SweepDefaultField = "sweep.default"
	//SweepMaxField Field name of sweep.max config
	SweepMaxField = "sweep.max"
	//SweepRepeatsField Field name of sweep.repeats config
	SweepRepeatsField = "sweep.repeats"

	//UniverseSizeField Field name of universe.size config
	UniverseSizeField = "universe.size"
	//UniverseFilePathField Field name of universe.file-path config
	UniverseFilePathField = "universe.file-path"

	//LoggerOutputField Field name of logger.output config
	LoggerOutputField = "logger.output"
	//LoggerFilePathField Field name of logger.file-path config
	LoggerFilePathField = "logger.file-path"
	//LoggerRotationTimeField Field name of logger.rotation-time config
	LoggerRotationTimeField = "logger.rotation-time"
	//LoggerMaxAgeField Field name of logger.max-age config
	LoggerMaxAgeField = "logger.max-age"
	//LoggerLevelField Field name of logger.level config
	LoggerLevelField = "logger.level"
)

const (
	//DefaultOutputPath default path of the CSV artifact
	DefaultOutputPath = "out.csv"
	//DefaultSweepSize default upper bound of the N sweep
	DefaultSweepSize = 10000
	//MaxSweepSize largest accepted upper bound of the N sweep
	MaxSweepSize = 1000000
	//DefaultUniverseSize default size of the integer pool, covers MaxSweepSize
	DefaultUniverseSize = 1000000
	//DefaultUniverseFilePath default path of the persisted integer pool
	DefaultUniverseFilePath = "random_ints.txt"
)

//Config system configuration
type Config struct {
	OutputPath        string          `mapstructure:"output-path"`
	MongoDBURL        string          `mapstructure:"mongodb-url"`
	MongoDBDatabase   string          `mapstructure:"mongodb-database"`
	MongoDBCollection string          `mapstructure:"mongodb-collection"`
	Sweep             *SweepConfig    `mapstructure:"sweep"`
	Universe          *UniverseConfig `mapstructure:"universe"`
	Logger            *LogConfig      `mapstructure:"logger"`
}

//SweepConfig sweep range configuration
type SweepConfig struct {
	Default int `mapstructure:"default"`
	Max     int `mapstructure:"max"`
	Repeats int `mapstructure:"repeats"`
}

//UniverseConfig integer pool configuration
type UniverseConfig struct {
	Size     int    `mapstructure:"size"`
	FilePath string `mapstructure:"file-path"`
}

//LogConfig system log configuration
type LogConfig struct {
	Output       string `mapstructure:"output"`
	FilePath     string `mapstructure:"file-path"`
	RotationTime int64  `mapstructure:"rotation-time"`
	MaxAge       int64  `mapstructure:"max-age"`
	Level        string `mapstructure:"level"`
}

//InitializeConfig fill config structure from viper
func InitializeConfig() *Config {
	config := new(Config)
	if err := viper.Unmarshal(config); err != nil {
		panic(fmt.Sprintf("fatal error when decoding config: %s\n", err))
	}
	return config
}
