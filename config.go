package inkfold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrBaseURLRequired  = errors.New("config: baseURL is required")
	ErrThemeRequired    = errors.New("config: theme is required")
	ErrThemeNotFound    = errors.New("config: theme directory not found")
	ErrPagerSizeInvalid = errors.New("config: pagination.pagerSize must be positive")
	ErrOutputUnknown    = errors.New("config: unknown output format")
)

// MenuEntry is one item of the site navigation.
type MenuEntry struct {
	Identifier string `mapstructure:"identifier"`
	Name       string `mapstructure:"name"`
	URL        string `mapstructure:"url"`
	Weight     int    `mapstructure:"weight"`
}

type MenuConf struct {
	Main []MenuEntry `mapstructure:"main"`
}

type PaginationConf struct {
	PagerSize int `mapstructure:"pagerSize"`
}

type OutputsConf struct {
	Home []string `mapstructure:"home"`
}

// GiscusConf parameterizes the hosted comments embed. The widget itself is
// loaded client-side; the build only passes these through to the theme.
type GiscusConf struct {
	Repo       string `mapstructure:"repo"`
	RepoID     string `mapstructure:"repoID"`
	Category   string `mapstructure:"category"`
	CategoryID string `mapstructure:"categoryID"`
	Mapping    string `mapstructure:"mapping"`
	Theme      string `mapstructure:"theme"`
}

// AnalyticsConf parameterizes the analytics beacon. ProxyPath, when set,
// routes the beacon through a self-hosted path instead of the vendor domain.
type AnalyticsConf struct {
	Domain    string `mapstructure:"domain"`
	ProxyPath string `mapstructure:"proxyPath"`
}

// SiteParams are theme-facing toggles and embed parameters. They are passed
// to templates verbatim; the generator itself only reads Author.
type SiteParams struct {
	Author              string        `mapstructure:"author"`
	Description         string        `mapstructure:"description"`
	ShowToc             bool          `mapstructure:"showToc"`
	ShowShareButtons    bool          `mapstructure:"showShareButtons"`
	ShowBreadcrumbs     bool          `mapstructure:"showBreadcrumbs"`
	ShowCodeCopyButtons bool          `mapstructure:"showCodeCopyButtons"`
	Comments            bool          `mapstructure:"comments"`
	Giscus              GiscusConf    `mapstructure:"giscus"`
	Analytics           AnalyticsConf `mapstructure:"analytics"`
}

type HighlightConf struct {
	Style string `mapstructure:"style"`
}

type GoldmarkParserConf struct {
	Attribute     bool `mapstructure:"attribute"`
	AutoHeadingID bool `mapstructure:"autoHeadingID"`
}

type GoldmarkConf struct {
	Parser GoldmarkParserConf `mapstructure:"parser"`
}

type MarkupConf struct {
	Highlight HighlightConf `mapstructure:"highlight"`
	Goldmark  GoldmarkConf  `mapstructure:"goldmark"`
}

// SiteConf is the whole site configuration. It is loaded once per build and
// never mutated afterwards.
type SiteConf struct {
	BaseURL      string `mapstructure:"baseURL"`
	Title        string `mapstructure:"title"`
	LanguageCode string `mapstructure:"languageCode"`
	Theme        string `mapstructure:"theme"`

	EnableRobotsTXT bool `mapstructure:"enableRobotsTXT"`
	BuildDrafts     bool `mapstructure:"buildDrafts"`
	BuildFuture     bool `mapstructure:"buildFuture"`
	BuildExpired    bool `mapstructure:"buildExpired"`

	ContentDir string `mapstructure:"contentDir"`
	StaticDir  string `mapstructure:"staticDir"`
	ThemesDir  string `mapstructure:"themesDir"`
	OutDir     string `mapstructure:"outDir"`

	Pagination PaginationConf `mapstructure:"pagination"`
	Outputs    OutputsConf    `mapstructure:"outputs"`
	Params     SiteParams     `mapstructure:"params"`
	Menu       MenuConf       `mapstructure:"menu"`
	Markup     MarkupConf     `mapstructure:"markup"`
}

// ThemeDir is the directory the configured theme lives in.
func (c *SiteConf) ThemeDir() string {
	return filepath.Join(c.ThemesDir, c.Theme)
}

// MainMenu returns the navigation entries ordered ascending by weight.
// Entries with equal weight keep their declaration order.
func (c *SiteConf) MainMenu() []MenuEntry {
	entries := make([]MenuEntry, len(c.Menu.Main))
	copy(entries, c.Menu.Main)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Weight < entries[j].Weight })
	return entries
}

// AbsURL joins a root-relative path onto the base URL.
func (c *SiteConf) AbsURL(rel string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(rel, "/")
}

var validOutputs = map[string]bool{
	OutputHTML: true,
	OutputRSS:  true,
	OutputAtom: true,
	OutputJSON: true,
}

// Validate checks the invariants a build relies on. The theme directory is
// checked here so a missing theme aborts before any output is written.
func (c *SiteConf) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if c.Theme == "" {
		return ErrThemeRequired
	}
	if info, err := os.Stat(c.ThemeDir()); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrThemeNotFound, c.ThemeDir())
	}
	if c.Pagination.PagerSize < 1 {
		return ErrPagerSizeInvalid
	}
	for _, out := range c.Outputs.Home {
		if !validOutputs[strings.ToLower(out)] {
			return fmt.Errorf("%w: %q", ErrOutputUnknown, out)
		}
	}
	return nil
}

// HasOutput reports whether the given home output format is enabled.
func (c *SiteConf) HasOutput(format string) bool {
	for _, out := range c.Outputs.Home {
		if strings.EqualFold(out, format) {
			return true
		}
	}
	return false
}

func setConfDefaults(v *viper.Viper) {
	v.SetDefault("title", "")
	v.SetDefault("languageCode", "en-us")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("themesDir", "themes")
	v.SetDefault("outDir", "public")
	v.SetDefault("pagination.pagerSize", 10)
	v.SetDefault("outputs.home", []string{OutputHTML, OutputRSS})
	v.SetDefault("params.giscus.mapping", "pathname")
	v.SetDefault("markup.goldmark.parser.autoHeadingID", true)
}

// LoadConf reads the site configuration document. Unknown keys are ignored,
// missing optional keys fall back to defaults, and a malformed document is
// reported with the parser's location annotation.
func LoadConf(path string) (*SiteConf, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setConfDefaults(v)

	v.SetEnvPrefix("INKFOLD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	conf := &SiteConf{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if !strings.HasSuffix(conf.BaseURL, "/") {
		conf.BaseURL += "/"
	}

	// Relative directories are resolved against the config file location so
	// the binary can run from anywhere.
	baseDir := filepath.Dir(path)
	conf.ContentDir = normalizePath(conf.ContentDir, baseDir)
	conf.StaticDir = normalizePath(conf.StaticDir, baseDir)
	conf.ThemesDir = normalizePath(conf.ThemesDir, baseDir)
	conf.OutDir = normalizePath(conf.OutDir, baseDir)

	return conf, nil
}

func normalizePath(path, baseDir string) string {
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}
