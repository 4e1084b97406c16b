package jobtailor

// Vocabulary lists shared by the classifier, the extractor gate, and the
// content scorer. The lists overlap but serve different passes: URL tokens
// and title words are cheap prefilters, keywords and indicators probe page
// prose, and the tiered scoring lists rank candidate regions.

// JobURLTokens are substrings that mark a URL as job-related.
var JobURLTokens = []string{
	"job",
	"career",
	"position",
	"vacancy",
	"opening",
	"hiring",
	"employment",
	"work",
	"recruit",
	"apply",
	"posting",
}

// JobTitleWords are substrings that mark a page title as job-related.
var JobTitleWords = []string{
	"job",
	"position",
	"career",
}

// JobKeywords is the classifier's vocabulary, matched against page text and
// title.
var JobKeywords = []string{
	"job description",
	"job summary",
	"responsibilities",
	"requirements",
	"qualifications",
	"experience required",
	"skills needed",
	"apply now",
	"submit application",
	"job duties",
	"role description",
	"position overview",
	"what you'll do",
	"what we're looking for",
	"ideal candidate",
	"minimum requirements",
	"preferred qualifications",
	"years of experience",
	"education required",
	"technical skills",
	"about the role",
	"web developer",
	"software engineer",
	"developer",
	"engineer",
}

// JobIndicators is the extractor's gating vocabulary. It leans toward
// job-description prose rather than navigation chrome.
var JobIndicators = []string{
	"job description",
	"job summary",
	"job details",
	"position summary",
	"responsibilities",
	"requirements",
	"qualifications",
	"skills required",
	"experience required",
	"job requirements",
	"role description",
	"what you'll do",
	"what we're looking for",
	"ideal candidate",
	"key responsibilities",
	"essential skills",
	"preferred qualifications",
	"about the role",
	"position overview",
	"job posting",
	"job opening",
	"apply now",
	"submit application",
	"job duties",
	"role responsibilities",
	"minimum requirements",
	"education required",
	"years of experience",
}

// GateWords is the small vocabulary used by CountJobWords for structural
// candidate filtering and line-based section scanning.
var GateWords = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"experience",
	"skills",
	"duties",
	"role",
	"position",
	"candidate",
	"work",
}

// HighValueKeywords contribute the full weight when scoring candidate text.
var HighValueKeywords = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"experience required",
	"skills needed",
	"job duties",
	"role responsibilities",
}

// MediumValueKeywords contribute a reduced weight when scoring candidate
// text.
var MediumValueKeywords = []string{
	"about the role",
	"position",
	"candidate",
	"team",
	"work",
	"development",
	"experience",
	"skills",
	"knowledge",
}

// LowValueKeywords contribute a fractional weight when the low tier is
// enabled. They are too generic to score highly on their own.
var LowValueKeywords = []string{
	"job",
	"career",
	"apply",
	"hiring",
	"opportunity",
}

// KnownJobSites are host or path fragments of job boards and careers sites.
// A URL containing any of them classifies positive without further analysis.
var KnownJobSites = []string{
	"linkedin.com",
	"indeed.com",
	"glassdoor.com",
	"monster.com",
	"ziprecruiter.com",
	"workday.com",
	"lever.co",
	"greenhouse.io",
	"ashbyhq.com",
	"careers.",
	"/jobs/",
	"/careers/",
	"angellist.com",
	"dice.com",
}
