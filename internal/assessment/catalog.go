package assessment

// Question is one item in an instrument. Schema is set only for the YSQ,
// where categorization is per question rather than computed from a grouping.
type Question struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Schema Schema `json:"schema,omitempty"`
}

// Test is one of the four questionnaire instruments. Instances are defined
// once at process start and never mutated.
type Test struct {
	ID          int        `json:"id"`
	Type        TestType   `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// LikertOption is one point on the 1-6 answer scale.
type LikertOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Answer scale bounds. All instruments share the same 6-point scale.
const (
	MinAnswer = 1
	MaxAnswer = 6
)

// Tests is the process-wide catalog, in display order. Read-only after init;
// Validate must pass before the catalog is served.
var Tests = []Test{
	{
		ID:          1,
		Type:        TestYSQ,
		Title:       "The 20 Questions Schema Quiz",
		Description: "Inspired by the Young Schema Questionnaire (YSQ), this quiz helps identify potential early maladaptive schemas.",
		Questions: []Question{
			{ID: "ysq-q1", Text: "I worry a great deal that the people I care about will leave me or abandon me.", Schema: AbandonmentInstability},
			{ID: "ysq-q2", Text: "I feel that people will take advantage of me.", Schema: MistrustAbuse},
			{ID: "ysq-q3", Text: "I don't feel like I fit in with other people; I feel fundamentally different.", Schema: SocialIsolationAlienation},
			{ID: "ysq-q4", Text: "I feel that I am not lovable and that I am unworthy of love from others.", Schema: DefectivenessShame},
			{ID: "ysq-q5", Text: "I often feel like I am a failure in most areas of my life.", Schema: Failure},
			{ID: "ysq-q6", Text: "I find it very difficult to make everyday decisions without a lot of reassurance from others.", Schema: DependenceIncompetence},
			{ID: "ysq-q7", Text: "I constantly worry about something bad happening, like a natural disaster, illness, or being a victim of a crime.", Schema: VulnerabilityToHarm},
			{ID: "ysq-q8", Text: "I have a hard time separating my feelings and identity from those of my parents or partner.", Schema: EnmeshmentUndevelopedSelf},
			{ID: "ysq-q9", Text: "I often put the needs of others before my own to the point where I neglect my own needs.", Schema: SelfSacrifice},
			{ID: "ysq-q10", Text: "I feel like I have to be the best at everything I do; I am very demanding of myself.", Schema: UnrelentingStandards},
			{ID: "ysq-q11", Text: "I often feel that I have to control my emotions and impulses to an excessive degree.", Schema: EmotionalInhibition},
			{ID: "ysq-q12", Text: "I find it difficult to accept \"no\" for an answer and feel that I should be able to do or have whatever I want.", Schema: EntitlementGrandiosity},
			{ID: "ysq-q13", Text: "I often give up easily when faced with challenges or boring tasks.", Schema: InsufficientSelfControl},
			{ID: "ysq-q14", Text: "I haven't had a strong person to give me sound advice or direction when I'm not sure what to do.", Schema: EmotionalDeprivation},
			{ID: "ysq-q15", Text: "I feel that my needs for love, attention, and affection are not truly met by others.", Schema: EmotionalDeprivation},
			{ID: "ysq-q16", Text: "I am a very private person and don't let others see the \"real\" me.", Schema: DefectivenessShame},
			{ID: "ysq-q17", Text: "I am often drawn to people who are critical of me or reject me.", Schema: Subjugation},
			{ID: "ysq-q18", Text: "I can't seem to escape the feeling that something bad is about to happen.", Schema: VulnerabilityToHarm},
			{ID: "ysq-q19", Text: "I find it hard to set boundaries with people for fear of their reaction.", Schema: Subjugation},
			{ID: "ysq-q20", Text: "I am highly critical of myself and others.", Schema: Punitiveness},
		},
	},
	{
		ID:          2,
		Type:        TestYPI,
		Title:       "The 24-Question Parenting Inventory",
		Description: "Inspired by the Young Parenting Inventory (YPI), this tool helps you reflect on the parenting styles you experienced in childhood.",
		Questions: []Question{
			{ID: "ypi-q1", Text: "Was affectionate and warm with me."},
			{ID: "ypi-q2", Text: "Made me feel like I wasn't good enough."},
			{ID: "ypi-q3", Text: "Was often anxious or worried about me."},
			{ID: "ypi-q4", Text: "Encouraged me to be independent and make my own choices."},
			{ID: "ypi-q5", Text: "Was very critical of my mistakes."},
			{ID: "ypi-q6", Text: "Seemed emotionally distant or unavailable."},
			{ID: "ypi-q7", Text: "Made me feel safe and protected."},
			{ID: "ypi-q8", Text: "Put their own needs before mine."},
			{ID: "ypi-q9", Text: "Set firm and consistent rules."},
			{ID: "ypi-q10", Text: "Made me feel guilty for not meeting their expectations."},
			{ID: "ypi-q11", Text: "Let me get away with too much; was not firm enough."},
			{ID: "ypi-q12", Text: "Was someone I could confide in and share my feelings with."},
			{ID: "ypi-q13", Text: "Pushed me to be the best, sometimes to an extreme."},
			{ID: "ypi-q14", Text: "Made me feel like a burden."},
			{ID: "ypi-q15", Text: "Respected my privacy."},
			{ID: "ypi-q16", Text: "Was controlling and wanted to know everything I was doing."},
			{ID: "ypi-q17", Text: "Made love and affection feel conditional on my success."},
			// ypi-q18 has no category mapping; it contributes qualitative
			// context only and is excluded from threshold counts.
			{ID: "ypi-q18", Text: "Was unpredictable; sometimes warm, sometimes cold or angry."},
			{ID: "ypi-q19", Text: "Encouraged me to express my feelings and opinions."},
			{ID: "ypi-q20", Text: "Compared me unfavorably to others."},
			{ID: "ypi-q21", Text: "Sheltered me too much from the world."},
			{ID: "ypi-q22", Text: "Was often preoccupied with their own problems."},
			{ID: "ypi-q23", Text: "Taught me practical life skills."},
			{ID: "ypi-q24", Text: "Used shame or humiliation as a form of discipline."},
		},
	},
	{
		ID:          3,
		Type:        TestSMI,
		Title:       "The 24-Question Schema Mode Inventory",
		Description: "Inspired by the Schema Mode Inventory (SMI), this tool helps identify your dominant emotional states and coping responses.",
		Questions: []Question{
			{ID: "smi-q1", Text: "I feel lonely, sad, and misunderstood."},
			{ID: "smi-q2", Text: "I feel emotionally numb, empty, or detached from my feelings."},
			{ID: "smi-q3", Text: "I push myself to be perfect and get everything done, feeling that rest is a waste of time."},
			{ID: "smi-q4", Text: "I find myself submitting to others' wishes and letting them have their way."},
			{ID: "smi-q5", Text: "I feel enraged when my important needs and feelings are not acknowledged."},
			{ID: "smi-q6", Text: "I am harsh and critical with myself, telling myself I'm stupid or worthless."},
			{ID: "smi-q7", Text: "I act tough, superior, or overly independent to keep people at a distance."},
			{ID: "smi-q8", Text: "I feel like a helpless child who needs someone to take care of them."},
			{ID: "smi-q9", Text: "I act on impulse and cravings, even if it harms me or others in the long run."},
			{ID: "smi-q10", Text: "I feel like I deserve to be punished for my mistakes."},
			{ID: "smi-q11", Text: "I put others' needs before my own to avoid conflict or rejection."},
			{ID: "smi-q12", Text: "I try to be the best, seek status, or control situations to feel valued."},
			{ID: "smi-q13", Text: "I find it very hard to get started on routine or boring tasks."},
			{ID: "smi-q14", Text: "I feel fundamentally flawed and unlovable."},
			{ID: "smi-q15", Text: "I distract myself with activities to avoid feeling empty (e.g., working excessively, over-eating, substance use)."},
			{ID: "smi-q16", Text: "I feel intense frustration and impatience when things don't go my way."},
			{ID: "smi-q17", Text: "I have a strong inner voice that tells me the rules I \"should\" and \"must\" follow."},
			{ID: "smi-q18", Text: "I feel like people don't respect me, so I act in a way that demands attention."},
			{ID: "smi-q19", Text: "I feel like I'm a bad person who deserves negative consequences."},
			{ID: "smi-q20", Text: "I find myself clinging to people because I'm afraid of being left alone."},
			{ID: "smi-q21", Text: "I avoid intimacy or getting close to people, even if I want to."},
			{ID: "smi-q22", Text: "I let others take the lead because I don't trust my own judgment."},
			{ID: "smi-q23", Text: "I can take care of my responsibilities while also making time for healthy pleasure and connection."},
			{ID: "smi-q24", Text: "I can validate my own feelings and needs and find healthy ways to meet them."},
		},
	},
	{
		ID:          4,
		Type:        TestOI,
		Title:       "The 30-Question Overcompensation Inventory",
		Description: "This inventory helps identify patterns of overcompensation, which are ways we fight against our core schemas by acting in an opposite manner.",
		Questions: []Question{
			{ID: "oi-q1", Text: "I feel a constant internal pressure that I am not doing enough or achieving enough."},
			{ID: "oi-q2", Text: "I am the one who takes charge in group settings, even when I'm unsure of myself."},
			{ID: "oi-q3", Text: "I have a strong dislike for rules and feel a need to bend or break them."},
			{ID: "oi-q4", Text: "When someone criticizes me, my first instinct is to find fault with them."},
			{ID: "oi-q5", Text: "I take pride in solving my own problems without any help from anyone."},
			{ID: "oi-q6", Text: "I must be the best at my job or in my social circle; second place feels like a failure."},
			{ID: "oi-q7", Text: "I need to be seen as special, successful, or important."},
			{ID: "oi-q8", Text: "I feel anxious or irritable when I cannot control a situation."},
			{ID: "oi-q9", Text: "I get a sense of satisfaction from proving authority figures wrong."},
			{ID: "oi-q10", Text: "I use sarcasm or biting humor to point out others' flaws."},
			{ID: "oi-q11", Text: "I feel uncomfortable when people try to get too close to me emotionally."},
			{ID: "oi-q12", Text: "I spend a lot of time correcting the mistakes of others, either out loud or in my head."},
			{ID: "oi-q13", Text: "I make sure my life looks impressive to others, even if I don't feel that way inside."},
			{ID: "oi-q14", Text: "I find it very difficult to delegate tasks because I believe I can do them better."},
			{ID: "oi-q15", Text: "I often do the opposite of what people advise, just to show I can't be controlled."},
			{ID: "oi-q16", Text: "If I feel hurt or insulted, my response is often anger and blame rather than sadness."},
			{ID: "oi-q17", Text: "People would describe me as fiercely independent and self-sufficient."},
			{ID: "oi-q18", Text: "I am extremely hard on myself if I make even a small mistake."},
			{ID: "oi-q19", Text: "I enjoy being the center of attention and telling stories where I am the hero."},
			{ID: "oi-q20", Text: "I tend to \"over-prepare\" for situations to ensure nothing goes wrong."},
			{ID: "oi-q21", Text: "I feel contempt for people I see as \"weak\" or \"needy.\""},
			{ID: "oi-q22", Text: "I am quick to point out why a problem is someone else's fault, not mine."},
			{ID: "oi-q23", Text: "I avoid situations where I might have to rely on others."},
			{ID: "oi-q24", Text: "My self-worth is tied almost entirely to my achievements and performance."},
			{ID: "oi-q25", Text: "I feel entitled to special treatment that others don't receive."},
			{ID: "oi-q26", Text: "I am often preoccupied with the potential for betrayal or being taken advantage of."},
			{ID: "oi-q27", Text: "I have a rebellious streak and don't like to conform to expectations."},
			{ID: "oi-q28", Text: "I get into power struggles with others to ensure I come out on top."},
			{ID: "oi-q29", Text: "I keep my feelings to myself because I believe they are a sign of weakness."},
			{ID: "oi-q30", Text: "I get angry and defensive when things don't go according to my plan."},
		},
	},
}

// LikertScales holds the per-instrument answer labels (values are shared).
var LikertScales = map[TestType][]LikertOption{
	TestYSQ: {
		{Value: 1, Label: "Completely untrue of me"},
		{Value: 2, Label: "Mostly untrue of me"},
		{Value: 3, Label: "Slightly more true than untrue"},
		{Value: 4, Label: "Moderately true of me"},
		{Value: 5, Label: "Mostly true of me"},
		{Value: 6, Label: "Describes me perfectly"},
	},
	TestYPI: {
		{Value: 1, Label: "Completely untrue"},
		{Value: 2, Label: "Mostly untrue"},
		{Value: 3, Label: "Slightly more true than untrue"},
		{Value: 4, Label: "Moderately true"},
		{Value: 5, Label: "Mostly true"},
		{Value: 6, Label: "Describes them perfectly"},
	},
	TestSMI: {
		{Value: 1, Label: "Never or almost never"},
		{Value: 2, Label: "Rarely"},
		{Value: 3, Label: "Sometimes"},
		{Value: 4, Label: "Fairly often"},
		{Value: 5, Label: "Often"},
		{Value: 6, Label: "Very often / All the time"},
	},
	TestOI: {
		{Value: 1, Label: "Never true of me"},
		{Value: 2, Label: "Rarely true of me"},
		{Value: 3, Label: "Sometimes true of me"},
		{Value: 4, Label: "Often true of me"},
		{Value: 5, Label: "Very often true of me"},
		{Value: 6, Label: "Describes me perfectly"},
	},
}

// TestByID returns the catalog entry with the given numeric id.
func TestByID(id int) (Test, bool) {
	for _, t := range Tests {
		if t.ID == id {
			return t, true
		}
	}
	return Test{}, false
}

// TestByType returns the catalog entry for the given instrument kind.
func TestByType(tt TestType) (Test, bool) {
	for _, t := range Tests {
		if t.Type == tt {
			return t, true
		}
	}
	return Test{}, false
}
