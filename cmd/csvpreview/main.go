package main

import (
	"flag"
	"goQuickLookCSV/internal/preview"
	"goQuickLookCSV/pkg/csvdoc"
	"goQuickLookCSV/pkg/loader"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Define command line arguments
var (
	configPath string

	debug      bool
	silent     bool
	filePath   string
	separator  string
	autoDetect bool
	maxRows    int
	noHeader   bool
	encoding   string
	output     string
	limit      int
	record     int
	sortKey    string
	sortType   string
	sortDesc   bool
)

type config struct {
	FilePath   string `yaml:"filePath"`
	Separator  string `yaml:"separator"`
	AutoDetect bool   `yaml:"autoDetect"`
	MaxRows    int    `yaml:"maxRows"`
	NoHeader   bool   `yaml:"noHeader"`
	Encoding   string `yaml:"encoding"`
	Output     string `yaml:"output"`
	Limit      int    `yaml:"limit"`
	SortKey    string `yaml:"sortKey"`
	SortType   string `yaml:"sortType"`
	SortDesc   bool   `yaml:"sortDesc"`
}

func init() {
	// Set up command line flags
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (.yaml, .yml or .ini)")
	flag.BoolVar(&debug, "debug", false, "Enable debug mode")
	flag.BoolVar(&silent, "silent", false, "Enable silent mode")
	flag.StringVar(&filePath, "f", "", "CSV file. Reads stdin when empty")
	flag.StringVar(&separator, "s", "", "Separator: a single character or comma|semicolon|tab|pipe")
	flag.BoolVar(&autoDetect, "a", false, "Detect the separator when -s is not given")
	flag.IntVar(&maxRows, "n", 0, "Maximum number of data rows to parse")
	flag.BoolVar(&noHeader, "H", false, "The first row is data, not a header")
	flag.StringVar(&encoding, "e", "", "Input encoding: utf-8|utf-16|latin1|windows-1252|macroman")
	flag.StringVar(&output, "o", "", "Output mode: text|csv|record")
	flag.IntVar(&limit, "l", 0, "Rows to show in text mode")
	flag.IntVar(&record, "r", 0, "Row number (from 1) to show in record mode")
	flag.StringVar(&sortKey, "sort", "", "Column key to sort by in text mode")
	flag.StringVar(&sortType, "sortType", "", "Sort key type: string|int|uint|float64|bool")
	flag.BoolVar(&sortDesc, "desc", false, "Sort in descending order")

	// Set up logging format
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func setLogLevel() {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else if silent {
		logrus.SetLevel(logrus.ErrorLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 1024)
			n := runtime.Stack(buf, false)
			logrus.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(buf[:n]),
			}).Error("A panic occurred")
		}
	}()

	flag.CommandLine.Parse(os.Args[1:])
	setLogLevel()

	// Load configuration
	if configPath != "" {
		c, err := loadConfig(configPath)
		if err != nil {
			logrus.WithError(err).WithField("configPath", configPath).Fatal("Failed to load configuration")
		}
		applyConfig(c)
	}

	// Default values
	if output == "" {
		output = "text"
	}

	if err := run(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("Application encountered an error")
	}

	logrus.Debug("Application finished successfully")
}

func loadConfig(path string) (*config, error) {
	logrus.WithField("path", path).Info("Loading configuration")
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return loadIniConfig(path)
	case ".yaml", ".yml":
		return loadYamlConfig(path)
	}
	return nil, errors.Errorf("unsupported config file type: %s", path)
}

func replaceEnvVars(content string) string {
	// Regex to find placeholders of the form {{ VAR }}
	re := regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)
	return re.ReplaceAllStringFunc(content, func(placeholder string) string {
		varName := re.FindStringSubmatch(placeholder)[1]
		return os.Getenv(varName)
	})
}

/*
---
filePath: data/{{ USER }}/sample.csv
separator: semicolon
autoDetect: false
maxRows: 100
noHeader: false
encoding: utf-8
output: text
limit: 20
*/
func loadYamlConfig(path string) (*config, error) {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	yamlContent := replaceEnvVars(string(yamlFile))

	c := new(config)
	if err := yaml.Unmarshal([]byte(yamlContent), c); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s", path)
	}
	return c, nil
}

/*
[preview]
filePath = sample.csv
separator = tab
autoDetect = true
*/
func loadIniConfig(path string) (*config, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c := new(config)
	for _, k := range cfg.Section("preview").Keys() {
		switch k.Name() {
		case "filePath":
			c.FilePath = replaceEnvVars(k.MustString(""))
		case "separator":
			c.Separator = k.MustString("")
		case "autoDetect":
			c.AutoDetect = k.MustBool(false)
		case "maxRows":
			c.MaxRows = k.MustInt(0)
		case "noHeader":
			c.NoHeader = k.MustBool(false)
		case "encoding":
			c.Encoding = k.MustString("")
		case "output":
			c.Output = k.MustString("")
		case "limit":
			c.Limit = k.MustInt(0)
		case "sortKey":
			c.SortKey = k.MustString("")
		case "sortType":
			c.SortType = k.MustString("")
		case "sortDesc":
			c.SortDesc = k.MustBool(false)
		}
	}
	return c, nil
}

// applyConfig fills every option not set on the command line.
func applyConfig(c *config) {
	if filePath == "" {
		filePath = c.FilePath
	}
	if separator == "" {
		separator = c.Separator
	}
	if !autoDetect {
		autoDetect = c.AutoDetect
	}
	if maxRows == 0 {
		maxRows = c.MaxRows
	}
	if !noHeader {
		noHeader = c.NoHeader
	}
	if encoding == "" {
		encoding = c.Encoding
	}
	if output == "" {
		output = c.Output
	}
	if limit == 0 {
		limit = c.Limit
	}
	if sortKey == "" {
		sortKey = c.SortKey
	}
	if sortType == "" {
		sortType = c.SortType
	}
	if !sortDesc {
		sortDesc = c.SortDesc
	}
}

func separatorFromName(name string) string {
	switch strings.ToLower(name) {
	case "comma":
		return ","
	case "semicolon":
		return ";"
	case "tab", `\t`:
		return "\t"
	case "pipe":
		return "|"
	}
	return name
}

// orderedRows returns nil when no sort key is set.
func orderedRows(t *csvdoc.Table) ([]*csvdoc.Row, error) {
	if sortKey == "" {
		return nil, nil
	}
	fieldType := sortType
	if fieldType == "" {
		fieldType = "string"
	}
	direction := csvdoc.COrderByAsc
	if sortDesc {
		direction = csvdoc.COrderByDesc
	}
	return t.OrderBy([]string{sortKey}, []string{fieldType}, direction)
}

func run(w io.Writer) error {
	text, err := loader.Load(filePath, encoding)
	if err != nil {
		return err
	}

	t, n, err := csvdoc.Parse(text, csvdoc.Config{
		Separator:  separatorFromName(separator),
		AutoDetect: autoDetect,
		MaxRows:    maxRows,
		NoHeader:   noHeader,
	})
	if err != nil {
		return err
	}
	logrus.WithField("file", filePath).Info(preview.Summary(t, n))

	switch output {
	case "", "text":
		opts := preview.Options{Limit: limit, MarkFirst: true}
		if opts.Rows, err = orderedRows(t); err != nil {
			return err
		}
		err = preview.Show(w, t, opts)
	case "csv":
		err = csvdoc.NewWriter(w, t.Separator()).WriteTable(t, !noHeader)
	case "record":
		err = preview.ShowRecord(w, t, record-1)
	default:
		err = errors.New("-o: output must be one of text|csv|record")
	}
	return err
}
