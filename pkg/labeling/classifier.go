package labeling

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"debate-corpus/pkg/domain"
	"debate-corpus/pkg/mediaclean"
)

const (
	// DefaultEnsembleN is how many ideology calls are averaged per utterance.
	DefaultEnsembleN = 4

	// MinLabelWords is the shortest utterance worth labeling.
	MinLabelWords = 10

	// RhetoricUnspecified is the neutral fallback label.
	RhetoricUnspecified = "unspecified"
)

var rhetoricLabels = []string{"attack", "acclaim", "defense"}

// Result holds everything the classifiers produce for one utterance.
type Result struct {
	Rhetoric string
	Econ     float64
	Soc      float64
	EconStd  float64
	SocStd   float64
	Notes    string
}

// Classifier attaches rhetoric and ideology labels to utterances.
type Classifier struct {
	call      CallFunc
	ensembleN int
	minWords  int

	retryInitial     time.Duration
	retryMaxInterval time.Duration
	retryMaxElapsed  time.Duration
}

// NewClassifier builds a classifier around call. ensembleN <= 0 selects the
// default ensemble size.
func NewClassifier(call CallFunc, ensembleN int) *Classifier {
	if ensembleN <= 0 {
		ensembleN = DefaultEnsembleN
	}
	return &Classifier{
		call:             call,
		ensembleN:        ensembleN,
		minWords:         MinLabelWords,
		retryInitial:     defaultRetryInitial,
		retryMaxInterval: defaultRetryMaxInterval,
		retryMaxElapsed:  defaultRetryMaxElapsed,
	}
}

// SetMinWords overrides the short-text skip threshold. Values <= 0 keep the
// current threshold.
func (c *Classifier) SetMinWords(n int) {
	if n > 0 {
		c.minWords = n
	}
}

// LabelUtterance runs both classifiers over one assembled row. Moderator rows
// and very short texts are skipped with the reason recorded in Notes.
func (c *Classifier) LabelUtterance(ctx context.Context, row domain.DebateRow) Result {
	if row.Role == domain.RoleModerator {
		return Result{Rhetoric: RhetoricUnspecified, Notes: "skipped: moderator"}
	}
	if mediaclean.WordCount(row.Text) < c.minWords {
		return Result{Rhetoric: RhetoricUnspecified, Notes: "skipped: short text"}
	}

	result := Result{Rhetoric: c.Rhetoric(ctx, row.Text)}
	result.Econ, result.Soc, result.EconStd, result.SocStd = c.Ideology(ctx, row.Text)
	return result
}

// Rhetoric classifies one utterance as attack, acclaim or defense. Any
// failure, or a reply naming none of the three, yields "unspecified".
func (c *Classifier) Rhetoric(ctx context.Context, text string) string {
	reply, err := c.callWithRetry(ctx, rhetoricPrompt(text))
	if err != nil {
		return RhetoricUnspecified
	}
	return CleanRhetoricLabel(reply)
}

// CleanRhetoricLabel extracts the first known rhetoric label mentioned in a
// model reply, falling back to "unspecified".
func CleanRhetoricLabel(reply string) string {
	lowered := strings.ToLower(reply)
	for _, label := range rhetoricLabels {
		if strings.Contains(lowered, label) {
			return label
		}
	}
	return RhetoricUnspecified
}

// Ideology scores one utterance on economic and social axes in [-1, 1],
// averaging an ensemble of calls that alternate between two prompt wordings.
// A failed or unparseable call contributes a neutral (0, 0) sample.
func (c *Classifier) Ideology(ctx context.Context, text string) (econ, soc, econStd, socStd float64) {
	econSamples := make([]float64, 0, c.ensembleN)
	socSamples := make([]float64, 0, c.ensembleN)

	for i := 0; i < c.ensembleN; i++ {
		prompt := ideologyPromptA(text)
		if i%2 == 1 {
			prompt = ideologyPromptB(text)
		}

		var e, s float64
		reply, err := c.callWithRetry(ctx, prompt)
		if err == nil {
			e, s = parseIdeologyReply(reply)
		}
		econSamples = append(econSamples, e)
		socSamples = append(socSamples, s)
	}

	econ, econStd = meanStd(econSamples)
	soc, socStd = meanStd(socSamples)
	return econ, soc, econStd, socStd
}

type ideologyScores struct {
	Econ float64 `json:"econ"`
	Soc  float64 `json:"soc"`
}

func parseIdeologyReply(reply string) (econ, soc float64) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return 0, 0
	}
	var scores ideologyScores
	if err := json.Unmarshal([]byte(reply[start:end+1]), &scores); err != nil {
		return 0, 0
	}
	return clip(scores.Econ), clip(scores.Soc)
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func meanStd(samples []float64) (mean, std float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	var variance float64
	for _, v := range samples {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(samples))
	return mean, math.Sqrt(variance)
}

func rhetoricPrompt(text string) string {
	return fmt.Sprintf(`You are coding the rhetorical function of statements from US presidential debates.

Classify the statement into exactly one category:
- attack: criticizes the opponent, their record or their proposals
- acclaim: praises the speaker's own record, character or proposals
- defense: responds to or rebuts a criticism of the speaker

Examples:
"My opponent voted against the bill four times." -> attack
"We created twenty million new jobs." -> acclaim
"That charge is simply not true, and here is why." -> defense

Statement:
%s

Answer with the single category word only.`, text)
}

func ideologyPromptA(text string) string {
	return fmt.Sprintf(`Score the following debate statement on two ideological axes, each from -1.0 (left/progressive) to 1.0 (right/conservative):
- econ: economic policy position
- soc: social policy position

Statement:
%s

Output ONLY a JSON object: {"econ": <float>, "soc": <float>}`, text)
}

func ideologyPromptB(text string) string {
	return fmt.Sprintf(`Read this statement from a US presidential debate and place the speaker's expressed position on two scales.

Scale 1 (econ): economic ideology, -1.0 = strongly left, 1.0 = strongly right.
Scale 2 (soc): social ideology, -1.0 = strongly progressive, 1.0 = strongly conservative.

Statement:
%s

Respond with JSON only, in the form {"econ": <float>, "soc": <float>}. No other text.`, text)
}
