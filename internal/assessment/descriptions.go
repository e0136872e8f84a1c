package assessment

// Description is the static profile text for one MBTI type.
type Description struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Strengths   string `json:"strengths"`
	Weaknesses  string `json:"weaknesses"`
}

// Describe returns the profile for a 4-letter code. Unknown codes get a
// generic placeholder instead of an error.
func Describe(code string) Description {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return Description{
		Title:       "Personality Type",
		Description: "Each personality type has its own unique strengths and areas for growth.",
		Strengths:   "Each type has different strengths",
		Weaknesses:  "Each type has different challenges",
	}
}

var descriptions = map[string]Description{
	"INTJ": {
		Title:       "The Architect",
		Description: "INTJs are strategic, innovative thinkers with a talent for logical analysis and long-term planning. They're driven by their own original ideas and often work best independently.",
		Strengths:   "Strategic thinking, independence, rational analysis, determination",
		Weaknesses:  "Can be overly critical, dismissive of emotions, perfectionistic",
	},
	"INTP": {
		Title:       "The Logician",
		Description: "INTPs are innovative inventors with an unquenchable thirst for knowledge. They love theoretical and abstract concepts and excel at finding logical inconsistencies.",
		Strengths:   "Analytical thinking, creativity, objectivity, openness to new ideas",
		Weaknesses:  "Can be absent-minded, insensitive, perfectionist, or socially detached",
	},
	"ENTJ": {
		Title:       "The Commander",
		Description: "ENTJs are bold, imaginative leaders who have a knack for finding intelligent solutions to difficult problems. They're strategic planners who often take charge naturally.",
		Strengths:   "Efficient, energetic, self-confident, strong-willed, strategic",
		Weaknesses:  "Can be impatient, stubborn, arrogant, or insensitive to others' feelings",
	},
	"ENTP": {
		Title:       "The Debater",
		Description: "ENTPs are smart, curious thinkers who enjoy intellectual challenges and can't resist a good debate. They're creative problem solvers who see connections others might miss.",
		Strengths:   "Knowledgeable, creative, excellent brainstorming, energetic",
		Weaknesses:  "May argue for fun, dislike practical matters, procrastinate",
	},
	"INFJ": {
		Title:       "The Advocate",
		Description: "INFJs are insightful, creative idealists motivated by deep convictions and a desire to help others. They seek meaning in relationships and work to understand others' perspectives.",
		Strengths:   "Creative, insightful, principled, passionate, altruistic",
		Weaknesses:  "Can be sensitive to criticism, perfectionistic, private, or burn out easily",
	},
	"INFP": {
		Title:       "The Mediator",
		Description: "INFPs are imaginative idealists guided by their core values and beliefs. They're curious, creative, and adaptable, with a strong desire to live a life that aligns with their values.",
		Strengths:   "Empathetic, creative, passionate, idealistic, dedicated to values",
		Weaknesses:  "May be unrealistic, overly idealistic, too self-critical, or impractical",
	},
	"ENFJ": {
		Title:       "The Protagonist",
		Description: "ENFJs are charismatic leaders who naturally understand and connect with others. They're often focused on helping others develop and fulfill their potential.",
		Strengths:   "Warm, empathetic, reliable, natural leaders, compelling communicators",
		Weaknesses:  "Can be too selfless, overly idealistic, too sensitive to criticism",
	},
	"ENFP": {
		Title:       "The Campaigner",
		Description: "ENFPs are enthusiastic, creative free spirits who find potential and possibility everywhere. They're excellent at connecting with others and bringing energy to situations.",
		Strengths:   "Enthusiastic, creative, people-oriented, energetic, empathetic",
		Weaknesses:  "Can be overly emotional, disorganized, overthink, or struggle with follow-through",
	},
	"ISTJ": {
		Title:       "The Logistician",
		Description: "ISTJs are practical, fact-minded individuals with an unwavering respect for facts and a dedication to reliability. They value traditions and loyalty.",
		Strengths:   "Honest, direct, dependable, organized, practical and responsible",
		Weaknesses:  "May be stubborn, insensitive, or resistant to change and new ideas",
	},
	"ISFJ": {
		Title:       "The Defender",
		Description: "ISFJs are protective, devoted individuals who enjoy contributing to established structures and traditions. They're practical helpers with excellent attention to detail.",
		Strengths:   "Supportive, reliable, observant, enthusiastic, loyal, detail-oriented",
		Weaknesses:  "Can be overworked, reluctant to change, overly humble, take criticism personally",
	},
	"ESTJ": {
		Title:       "The Executive",
		Description: "ESTJs are excellent administrators who like to take charge and manage people and situations. They value order, structure, and clear communication.",
		Strengths:   "Dedicated, strong-willed, practical, direct, honest, loyal",
		Weaknesses:  "May be inflexible, judgmental, too focused on social status, not good with emotions",
	},
	"ESFJ": {
		Title:       "The Consul",
		Description: "ESFJs are caring, social, and popular people who value harmony and cooperation. They're attentive to others' needs and often serve as the glue in their communities.",
		Strengths:   "Strong people skills, reliable, practical, sensitive to others, loyal",
		Weaknesses:  "Can be vulnerable to criticism, inflexible, needy for approval",
	},
	"ISTP": {
		Title:       "The Virtuoso",
		Description: "ISTPs are daring experimenters with an aptitude for understanding how mechanical things work. They're practical problem solvers who enjoy hands-on activities.",
		Strengths:   "Optimistic, creative, practical, spontaneous, rational in crisis",
		Weaknesses:  "Can be private, insensitive, easily bored, risk-prone",
	},
	"ISFP": {
		Title:       "The Adventurer",
		Description: "ISFPs are artistic, sensitive explorers who value personal freedom and expression. They enjoy new experiences and have a strong aesthetic sense.",
		Strengths:   "Charming, sensitive to others, creative, passionate, artistic",
		Weaknesses:  "May be unpredictable, too independent, easily stressed, or conflict-avoidant",
	},
	"ESTP": {
		Title:       "The Entrepreneur",
		Description: "ESTPs are energetic thrill-seekers who enjoy acting on immediate, practical solutions. They're adaptable, observant, and enjoy living in the moment.",
		Strengths:   "Bold, resourceful, rational, practical, observant, excellent in crisis",
		Weaknesses:  "Can be impatient, risk-prone, unstructured, or defiant of rules",
	},
	"ESFP": {
		Title:       "The Entertainer",
		Description: "ESFPs are vibrant, enthusiastic people who enjoy being in the spotlight and bringing joy to others. They're spontaneous, energetic, and enjoy living in the moment.",
		Strengths:   "Bold, original, aesthetic, practical, observant, excellent people skills",
		Weaknesses:  "May be sensitive to criticism, unfocused, or have difficulty with planning",
	},
}
