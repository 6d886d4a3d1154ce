package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cognicore/keywords/internal/corpus"
	"github.com/cognicore/keywords/pkg/keywords"
	"github.com/cognicore/keywords/pkg/keywords/config"
)

// OutputFile is the name of the result file written into --output.
const OutputFile = "keywords.json"

// optionFlags binds Options keys to their command-line flags.
var optionFlags = map[string]string{
	"method":        "extraction-method",
	"max_keywords":  "max-keywords",
	"language":      "language",
	"doc_counter":   "doc-counter",
	"workers":       "workers",
	"stoplist_path": "stoplist",
	"lexicon_path":  "lexicon",
	"tagger":        "tagger",
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Extract keywords from a text, a file or a directory of files",
		Long: `keywords ranks the most representative words of a document using word
frequency (wf), TF-IDF (tfidf) or PageRank over word co-occurrence (pr).

With --dir-path, files that cannot be read or hold no text are skipped
with a warning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("text", "t", "", "text for extraction")
	flags.StringP("file-path", "f", "", "path to a file for extraction")
	flags.StringP("dir-path", "d", "", "path to a directory for extraction")
	flags.StringP("extraction-method", "m", "wf", "extraction method: wf, tfidf or pr")
	flags.IntP("max-keywords", "n", 10, "maximum number of keywords per document")
	flags.StringP("language", "l", "english", "language of the stopword list and stemmer")
	flags.StringP("output", "o", "", "directory to write "+OutputFile+" into")
	flags.BoolP("print", "p", false, "print keywords to stdout")
	flags.IntP("workers", "w", 1, "documents processed in parallel for --dir-path")
	flags.Int("doc-counter", 1, "corpus size used by tfidf")
	flags.String("tagger", "perceptron", "part-of-speech tagger: perceptron or rules")
	flags.String("stoplist", "", "YAML stoplist file")
	flags.String("lexicon", "", "YAML lexicon file with extra irregular forms")
	flags.String("config", "", "YAML options file")
	flags.Bool("debug", false, "enable debug logging")

	for key, name := range optionFlags {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	// a missing .env is fine
	_ = godotenv.Load()

	flags := cmd.Flags()
	debug, _ := flags.GetBool("debug")
	configPath, _ := flags.GetString("config")
	text, _ := flags.GetString("text")
	filePath, _ := flags.GetString("file-path")
	dirPath, _ := flags.GetString("dir-path")
	output, _ := flags.GetString("output")
	printResult, _ := flags.GetBool("print")

	logger, err := newLogger(debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts, err := resolveOptions(v, configPath)
	if err != nil {
		return err
	}
	method, err := keywords.ParseMethod(opts.Method)
	if err != nil {
		return err
	}

	comp, err := config.NewLoader(opts).Load()
	if err != nil {
		return err
	}
	extractor, err := keywords.New(keywords.Options{
		Backend:    comp.Backend,
		Stoplist:   comp.Stoplist,
		DocCounter: opts.DocCounter,
		Workers:    opts.Workers,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	var result any
	switch {
	case text != "":
		env, err := extractor.ExtractOne(text, method, opts.MaxKeywords)
		if err != nil {
			return err
		}
		result = env
		if printResult {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(env.Keywords, ", "))
		}

	case filePath != "":
		content, err := corpus.ReadFile(filePath)
		if err != nil {
			return err
		}
		env, err := extractor.ExtractOne(content, method, opts.MaxKeywords)
		if err != nil {
			return fmt.Errorf("extract %s: %w", filePath, err)
		}
		result = env
		if printResult {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(env.Keywords, ", "))
		}

	case dirPath != "":
		docs, errs := corpus.ReadDir(dirPath)
		for _, e := range errs {
			logger.Warn("skipping unreadable file", zap.Error(e))
		}
		if docs == nil {
			return fmt.Errorf("read directory %s: %w", dirPath, errors.Join(errs...))
		}
		for path, content := range docs {
			if strings.TrimSpace(content) == "" {
				logger.Warn("skipping blank file", zap.String("path", path))
				delete(docs, path)
			}
		}
		envs, err := extractor.ExtractMany(cmd.Context(), docs, method, opts.MaxKeywords)
		if err != nil {
			return err
		}
		result = envs
		if printResult {
			printBatch(cmd.OutOrStdout(), envs)
		}

	default:
		return errors.New("one of --text, --file-path or --dir-path is required")
	}

	logger.Info("extraction finished", zap.Stringer("method", method))

	if output != "" {
		path := filepath.Join(output, OutputFile)
		if err := writeJSON(path, result); err != nil {
			return err
		}
		logger.Info("result written", zap.String("path", path))
	}
	return nil
}

// resolveOptions layers the options: built-in defaults, then the --config
// file, then KEYWORDS_* environment variables, then explicit flags.
func resolveOptions(v *viper.Viper, configPath string) (config.Options, error) {
	base := config.Default()
	if configPath != "" {
		loaded, err := config.LoadOptions(configPath)
		if err != nil {
			return config.Options{}, err
		}
		base = *loaded
	}

	v.SetDefault("method", base.Method)
	v.SetDefault("max_keywords", base.MaxKeywords)
	v.SetDefault("language", base.Language)
	v.SetDefault("doc_counter", base.DocCounter)
	v.SetDefault("workers", base.Workers)
	v.SetDefault("stoplist_path", base.StoplistPath)
	v.SetDefault("lexicon_path", base.LexiconPath)
	v.SetDefault("tagger", base.Tagger)

	v.SetEnvPrefix("KEYWORDS")
	v.AutomaticEnv()

	var opts config.Options
	if err := v.Unmarshal(&opts); err != nil {
		return config.Options{}, fmt.Errorf("decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return config.Options{}, err
	}
	return opts, nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func printBatch(w io.Writer, envs map[string]keywords.Envelope) {
	paths := make([]string, 0, len(envs))
	for p := range envs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Fprintf(w, "Keywords for '%s': %s\n", p, strings.Join(envs[p].Keywords, ", "))
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
