package assessment

// TestType identifies one of the four questionnaire instruments.
type TestType string

const (
	TestYSQ TestType = "YSQ" // schema quiz: sum + per-question schema tags
	TestYPI TestType = "YPI" // parenting inventory: threshold count, two caregivers
	TestSMI TestType = "SMI" // schema mode inventory: mean by mode group
	TestOI  TestType = "OI"  // overcompensation inventory: mean by pattern group
)

// Schema is an early maladaptive schema measured by the YSQ.
type Schema string

const (
	AbandonmentInstability    Schema = "Abandonment/Instability"
	MistrustAbuse             Schema = "Mistrust/Abuse"
	SocialIsolationAlienation Schema = "Social Isolation/Alienation"
	DefectivenessShame        Schema = "Defectiveness/Shame"
	Failure                   Schema = "Failure"
	DependenceIncompetence    Schema = "Dependence/Incompetence"
	VulnerabilityToHarm       Schema = "Vulnerability to Harm or Illness"
	EnmeshmentUndevelopedSelf Schema = "Enmeshment/Undeveloped Self"
	SelfSacrifice             Schema = "Self-Sacrifice"
	UnrelentingStandards      Schema = "Unrelenting Standards/Hypercriticalness"
	EmotionalInhibition       Schema = "Emotional Inhibition"
	EntitlementGrandiosity    Schema = "Entitlement/Grandiosity"
	InsufficientSelfControl   Schema = "Insufficient Self-Control/Self-Discipline"
	EmotionalDeprivation      Schema = "Emotional Deprivation"
	Subjugation               Schema = "Subjugation"
	Punitiveness              Schema = "Punitiveness"
)

// ParentingCategory groups YPI questions by parenting pattern.
type ParentingCategory string

const (
	RejectionCriticism           ParentingCategory = "Rejection & Criticism"
	EmotionalDeprivationDistance ParentingCategory = "Emotional Deprivation & Distance"
	OvercontrolEnmeshment        ParentingCategory = "Overcontrol & Enmeshment"
	ExcessiveDemands             ParentingCategory = "Excessive Demands & Unrelenting Standards"
	LackOfLimits                 ParentingCategory = "Lack of Limits & Insufficient Discipline"
	PositiveParenting            ParentingCategory = "Positive Parenting Attributes"
)

// ParentingCategories lists all YPI categories in display order. Scorers use
// this to guarantee every category is present in the output, even when empty.
var ParentingCategories = []ParentingCategory{
	RejectionCriticism,
	EmotionalDeprivationDistance,
	OvercontrolEnmeshment,
	ExcessiveDemands,
	LackOfLimits,
	PositiveParenting,
}

// Mode is a schema mode measured by the SMI.
type Mode string

const (
	VulnerableChild             Mode = "Vulnerable Child"
	AngryChild                  Mode = "Angry Child"
	ImpulsiveUndisciplinedChild Mode = "Impulsive/Undisciplined Child"
	DetachedProtector           Mode = "Detached Protector"
	CompliantSurrenderer        Mode = "Compliant Surrenderer"
	Overcompensator             Mode = "Overcompensator"
	PunitiveParent              Mode = "Punitive Parent"
	DemandingParent             Mode = "Demanding Parent"
	// HealthyAdult is the protective mode. Feedback selection treats it
	// separately from the maladaptive modes.
	HealthyAdult Mode = "Healthy Adult"
)

// Pattern is an overcompensation pattern measured by the OI.
type Pattern string

const (
	Perfectionism        Pattern = "Perfectionism & Unrelenting Standards"
	SelfAggrandizement   Pattern = "Self-Aggrandizement & Status Seeking"
	ControlVigilance     Pattern = "Control & Vigilance"
	RebellionDefiance    Pattern = "Rebellion & Defiance"
	AggressionBlame      Pattern = "Aggression & Blame"
	DetachedSelfReliance Pattern = "Detached Self-Reliance (Hyper-Independence)"
)

// SchemaDefinitions holds the short interpretive description shown alongside
// each schema in results and fed to the feedback generator as context.
var SchemaDefinitions = map[Schema]string{
	AbandonmentInstability:    "The belief that you will inevitably lose anyone with whom you form an emotional attachment.",
	MistrustAbuse:             "The expectation that others will hurt, abuse, humiliate, cheat, lie, manipulate, or take advantage of you.",
	SocialIsolationAlienation: "The feeling that you are isolated from the rest of the world, different from other people, and/or not part of any group or community.",
	DefectivenessShame:        "The belief that you are internally flawed, and that if others knew, they would withdraw their support.",
	Failure:                   "The belief that you have failed, will inevitably fail, or are fundamentally inadequate compared to your peers.",
	DependenceIncompetence:    "The belief that you are unable to handle your everyday responsibilities competently without considerable help from others.",
	VulnerabilityToHarm:       "The exaggerated fear that imminent catastrophe will strike at any time and that you will be unable to prevent it.",
	EnmeshmentUndevelopedSelf: "Excessive emotional involvement and closeness with one or more significant others at the expense of full individuation or normal social development.",
	SelfSacrifice:             "The excessive focus on voluntarily meeting the needs of others in daily situations, at the expense of your own gratification.",
	UnrelentingStandards:      "The underlying belief that you must strive to meet very high internalized standards of behavior and performance, usually to avoid criticism.",
	EmotionalInhibition:       "The excessive inhibition of spontaneous action, feeling, or communication, usually to avoid disapproval by others, feelings of shame, or losing control of your impulses.",
	EntitlementGrandiosity:    "The belief that you are superior to other people and therefore have special rights and privileges.",
	InsufficientSelfControl:   "The pervasive difficulty or refusal to exercise sufficient self-control and frustration tolerance to achieve your personal goals.",
	EmotionalDeprivation:      "The belief that your desire for a normal degree of emotional support will not be adequately met by others.",
	Subjugation:               "The excessive surrendering of control to others because you feel coerced, usually to avoid anger, retaliation, or abandonment.",
	Punitiveness:              "The belief that people should be harshly punished for making mistakes. This can be directed at yourself or others.",
}

var ParentingCategoryDefinitions = map[ParentingCategory]string{
	RejectionCriticism:           "This pattern reflects a childhood environment where you may have felt flawed, unloved, or unworthy. Your caregiver may have been overly critical, shaming, or rejecting.",
	EmotionalDeprivationDistance: "This suggests a caregiver who was not emotionally available. They may have been cold, neglectful, or too absorbed in their own issues to provide adequate nurturance, warmth, and guidance.",
	OvercontrolEnmeshment:        "This pattern points to a caregiver who was overly involved, anxious, and controlling. They may have made you feel smothered, lacked respect for your boundaries, and discouraged autonomy.",
	ExcessiveDemands:             "This reflects a parenting style focused on high achievement, performance, and perfection. Love and approval may have felt contingent on you meeting very high standards.",
	LackOfLimits:                 "This pattern suggests a permissive caregiver who did not provide enough structure, discipline, or guidance. This can make it difficult for a child to learn self-control and respect for others' boundaries.",
	PositiveParenting:            "High scores here reflect a healthy, supportive, and balanced parenting style that fosters resilience and a strong sense of self. These are protective factors against developing maladaptive schemas.",
}

var ModeDefinitions = map[Mode]string{
	VulnerableChild:             "You often feel lonely, sad, helpless, or flawed. This is the part of you that holds the core pain of your unmet childhood needs.",
	AngryChild:                  "You feel intense anger, rage, or frustration when your core needs feel blocked or violated. This anger is often a reaction to the pain of the Vulnerable Child.",
	ImpulsiveUndisciplinedChild: "You tend to act on immediate desires and impulses without considering the consequences. This mode seeks immediate gratification and struggles with self-discipline.",
	DetachedProtector:           "Your go-to coping style is to shut down emotionally. You might feel empty, numb, or bored, and you avoid feelings by distracting yourself or withdrawing from others.",
	CompliantSurrenderer:        "You cope by submitting to others. You tend to be a people-pleaser, avoid conflict, and allow others to control you, suppressing your own needs and feelings.",
	Overcompensator:             "You fight your schemas by trying to be the opposite. You might act tough, grandiose, controlling, or perfectionistic to prove your worth and keep others from seeing your vulnerability.",
	PunitiveParent:              "This is a harsh, internal voice that criticizes and punishes you for making mistakes. It makes you feel that you are bad and deserve negative outcomes.",
	DemandingParent:             "This is the internal voice that pushes you relentlessly to meet extremely high standards. It tells you that you \"should\" always be productive, perfect, and efficient, and that expressing feelings or relaxing is unacceptable.",
	HealthyAdult:                "This is the goal of Schema Therapy. This part of you is competent, resilient, and balanced. It can regulate emotions, make wise decisions, set healthy boundaries, and nurture your Vulnerable Child.",
}

var PatternDefinitions = map[Pattern]string{
	Perfectionism:        "This pattern is a direct fight against an underlying feeling of being flawed or a failure. You overcompensate by striving for perfection, being hyper-critical of yourself and others, and linking your entire self-worth to achievement.",
	SelfAggrandizement:   "This pattern fights schemas of Defectiveness, Social Isolation, or Emotional Deprivation. You build an external facade of superiority, confidence, and importance to convince yourself and others of your value.",
	ControlVigilance:     "This is a defense against schemas like Mistrust, Vulnerability, or Abandonment. You believe the world is unpredictable and unsafe, so you must maintain tight control over your environment and relationships.",
	RebellionDefiance:    "This pattern is a direct fight against a Subjugation schema. You overcompensate by resisting authority, rules, and advice.",
	AggressionBlame:      "This is a \"preemptive strike\" strategy against schemas of Mistrust/Abuse or Defectiveness. The logic is: \"I will hurt you before you can hurt me.\"",
	DetachedSelfReliance: "This pattern fights schemas of Abandonment, Dependence, or Mistrust. You have learned that relying on others leads to pain, so you build a wall of extreme self-sufficiency.",
}
