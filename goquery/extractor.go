package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/jobtailor"
)

// jobSelectors is the ordered candidate list for the selector pass:
// site-specific selectors for known job boards first, then generic
// structural tags, then generic attribute-substring selectors. Order
// matters under strict-greater best tracking: an equal-scoring later
// selector never displaces an earlier match, so the structural tags sit
// ahead of the attribute patterns.
var jobSelectors = []string{
	// LinkedIn
	".jobs-description-content__text",
	".jobs-box__html-content",
	`[data-automation-id="jobPostingDescription"]`,
	".jobs-description__container",

	// Indeed
	".jobsearch-jobDescriptionText",
	"#jobDescriptionText",
	".jobsearch-JobComponent-description",
	".icl-u-lg-mr--sm",

	// Glassdoor
	".jobDescriptionContent",
	".desc",
	`[data-test="jobDescriptionContainer"]`,

	// Generic structural tags
	"main",
	"article",
	"section",

	// Generic attribute patterns
	`[class*="job-description"]`,
	`[class*="job-content"]`,
	`[class*="job-details"]`,
	`[class*="position-description"]`,
	`[class*="role-description"]`,
	`[id*="job-description"]`,
	`[id*="job-content"]`,
	`[id*="description"]`,
	".job-summary",
	".role-summary",
	".position-summary",
}

// ExtractorConfig tunes the extraction strategy ladder. All thresholds are
// explicit so drifted reference values stay in one place.
type ExtractorConfig struct {
	// GateFloor is the minimum job-indicator count for extraction to
	// run at all.
	GateFloor int

	// MinSelectorLength excludes trivial selector-pass candidates.
	MinSelectorLength int

	// StructuralBelow and FullPageBelow are the escalation thresholds:
	// the next pass runs only while the best score is below them.
	StructuralBelow float64
	FullPageBelow   float64

	// Structural pass candidate window.
	StructuralMinLength int
	StructuralMaxLength int
	StructuralMinWords  int
	StructuralTopN      int

	// ExcerptCap bounds the raw full-page fallback excerpt.
	ExcerptCap int

	Score   jobtailor.ScoreConfig
	Section jobtailor.SectionConfig
}

// DefaultExtractorConfig returns the ladder configuration used in
// production.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		GateFloor:           1,
		MinSelectorLength:   100,
		StructuralBelow:     5,
		FullPageBelow:       3,
		StructuralMinLength: 300,
		StructuralMaxLength: 8000,
		StructuralMinWords:  3,
		StructuralTopN:      10,
		ExcerptCap:          3000,
		Score:               jobtailor.DefaultScoreConfig(),
		Section:             jobtailor.DefaultSectionConfig(),
	}
}

// Extractor extracts job-description text through an escalating strategy
// ladder: known selectors, structural candidate analysis, then full-page
// fallback. An optional ArticleExtractor narrows the full-page pass to the
// main content region.
type Extractor struct {
	cfg     ExtractorConfig
	article jobtailor.ArticleExtractor
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithConfig replaces the default ladder configuration.
func WithConfig(cfg ExtractorConfig) ExtractorOption {
	return func(e *Extractor) { e.cfg = cfg }
}

// WithArticleExtractor sets the boilerplate remover used by the full-page
// pass.
func WithArticleExtractor(article jobtailor.ArticleExtractor) ExtractorOption {
	return func(e *Extractor) { e.article = article }
}

// NewExtractor creates an Extractor with the default configuration.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{cfg: DefaultExtractorConfig()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// candidate tracks the best region seen so far. The score comparison is
// strict, so the first candidate to reach a score wins ties.
type candidate struct {
	text     string
	html     string
	score    float64
	strategy jobtailor.Strategy
}

// Extract runs the strategy ladder over the document. Pages that fail the
// indicator gate or yield no usable candidate return a sentinel Extraction
// rather than an error.
func (e *Extractor) Extract(html string) (*jobtailor.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobtailor.Errorf(jobtailor.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Selection
	if body := doc.Find("body"); body.Length() > 0 {
		root = body
	}

	pageText := cleanLines(root)
	if e.countIndicators(pageText) < e.cfg.GateFloor {
		return &jobtailor.Extraction{
			Text:     jobtailor.NoJobContentText,
			Strategy: jobtailor.StrategyNone,
		}, nil
	}

	best := e.selectorPass(doc)
	if best.score < e.cfg.StructuralBelow {
		best = e.structuralPass(doc, best)
	}
	if best.score < e.cfg.FullPageBelow {
		best = e.fullPagePass(html, pageText, best)
	}

	if best.text == "" {
		return &jobtailor.Extraction{
			Text:     jobtailor.NoExtractionText,
			Strategy: jobtailor.StrategyNone,
		}, nil
	}
	return &jobtailor.Extraction{
		Text:     best.text,
		HTML:     best.html,
		Score:    best.score,
		Strategy: best.strategy,
	}, nil
}

// selectorPass tries each known selector in order, scoring every matched
// element. Selectors that fail to compile are skipped.
func (e *Extractor) selectorPass(doc *goquery.Document) candidate {
	var best candidate
	for _, selector := range jobSelectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			continue
		}
		doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
			text := cleanText(sel)
			if len(text) < e.cfg.MinSelectorLength {
				return
			}
			score := jobtailor.ScoreJobContent(text, e.cfg.Score)
			if score > best.score {
				best = candidate{
					text:     text,
					html:     outerHTML(sel),
					score:    score,
					strategy: jobtailor.StrategySelector,
				}
			}
		})
	}
	return best
}

// structuralPass scans generic block elements for job-like regions, ranks
// them by score, and rescans the top candidates with full cleaning.
func (e *Extractor) structuralPass(doc *goquery.Document, best candidate) candidate {
	type region struct {
		sel   *goquery.Selection
		score float64
	}
	var regions []region

	doc.Find("div, section, article, main, p").Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if len(raw) < e.cfg.StructuralMinLength || len(raw) > e.cfg.StructuralMaxLength {
			return
		}
		if jobtailor.CountJobWords(raw) < e.cfg.StructuralMinWords {
			return
		}
		regions = append(regions, region{sel: sel, score: jobtailor.ScoreJobContent(raw, e.cfg.Score)})
	})

	// Stable sort keeps document order among equal scores.
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].score > regions[j].score
	})
	if len(regions) > e.cfg.StructuralTopN {
		regions = regions[:e.cfg.StructuralTopN]
	}

	for _, r := range regions {
		text := cleanText(r.sel)
		score := jobtailor.ScoreJobContent(text, e.cfg.Score)
		if score > best.score {
			best = candidate{
				text:     text,
				html:     outerHTML(r.sel),
				score:    score,
				strategy: jobtailor.StrategyStructural,
			}
		}
	}
	return best
}

// fullPagePass narrows the whole page (via the article extractor when one
// is configured), scans for a job section, and finally falls back to a
// capped excerpt of the full text.
func (e *Extractor) fullPagePass(html, pageText string, best candidate) candidate {
	full := pageText
	fullHTML := ""
	if e.article != nil {
		if article, err := e.article.Extract(html); err == nil && article.ContentHTML != "" {
			if articleDoc, err := goquery.NewDocumentFromReader(strings.NewReader(article.ContentHTML)); err == nil {
				if text := cleanLines(articleDoc.Selection); text != "" {
					full = text
					fullHTML = article.ContentHTML
				}
			}
		}
	}

	if section := jobtailor.ExtractJobSection(full, e.cfg.Section); len(section) >= e.cfg.Section.MinLength {
		score := jobtailor.ScoreJobContent(section, e.cfg.Score)
		if score > best.score {
			best = candidate{
				text:     section,
				html:     fullHTML,
				score:    score,
				strategy: jobtailor.StrategyFullPage,
			}
		}
	}

	if best.text == "" {
		excerpt := strings.TrimSpace(whitespacePattern.ReplaceAllString(full, " "))
		if len(excerpt) > e.cfg.ExcerptCap {
			excerpt = truncate(excerpt, e.cfg.ExcerptCap) + "..."
		}
		if len(excerpt) >= e.cfg.Score.MinLength {
			best = candidate{
				text:     excerpt,
				html:     fullHTML,
				score:    jobtailor.ScoreJobContent(excerpt, e.cfg.Score),
				strategy: jobtailor.StrategyFullPage,
			}
		}
	}
	return best
}

func (e *Extractor) countIndicators(pageText string) int {
	lower := strings.ToLower(pageText)
	count := 0
	for _, indicator := range jobtailor.JobIndicators {
		if strings.Contains(lower, indicator) {
			count++
		}
	}
	return count
}

// outerHTML renders a selection back to HTML, returning "" on failure.
func outerHTML(sel *goquery.Selection) string {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return html
}
