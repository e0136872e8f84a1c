package ai

import (
	"fmt"
	"strings"

	"github.com/Minggyul/mbti-chat/internal/assessment"
	"github.com/Minggyul/mbti-chat/internal/chat"
)

const analysisSystemPrompt = `You are an expert MBTI personality analyst. Your task is to analyze the user's messages to determine their MBTI type based on the following dimensions:

E vs I: Extraversion vs Introversion - how the person gets their energy and interacts with others
S vs N: Sensing vs Intuition - how the person processes information
T vs F: Thinking vs Feeling - how the person makes decisions
J vs P: Judging vs Perceiving - how the person approaches structure and planning

Based on the user's message, analyze each dimension and provide:
1. A score from -1.0 to 1.0 where:
   - For E/I: -1.0 means strongly Introverted, 1.0 means strongly Extraverted
   - For S/N: -1.0 means strongly Sensing, 1.0 means strongly Intuitive
   - For T/F: -1.0 means strongly Thinking, 1.0 means strongly Feeling
   - For J/P: -1.0 means strongly Judging, 1.0 means strongly Perceiving

2. A confidence value from 0.0 to 1.0 indicating how certain you are about this assessment

Respond with JSON only in this exact format:
{
    "E_I": {"score": float, "confidence": float, "reasoning": "brief explanation"},
    "S_N": {"score": float, "confidence": float, "reasoning": "brief explanation"},
    "T_F": {"score": float, "confidence": float, "reasoning": "brief explanation"},
    "J_P": {"score": float, "confidence": float, "reasoning": "brief explanation"}
}`

// targetQuestions are natural follow-ups the generator can weave into
// the conversation to probe one axis without making it feel like a quiz.
var targetQuestions = map[assessment.Dimension][]string{
	assessment.EI: {
		"How do you usually spend your weekends? Do you enjoy meeting up with friends, or do you prefer some quiet time to yourself?",
		"I'm curious - how do you feel when you meet new people? Excited, or a little tense?",
		"When life gets busy, how do you recharge? Resting quietly on your own, or getting together with other people?",
		"Which feels more comfortable to you: chatting with lots of people at a big gathering, or having a deep conversation with a few close friends?",
	},
	assessment.SN: {
		"When you come across new information, do you focus on the concrete facts first, or on what it could mean and where it could lead?",
		"When you solve a problem, do you usually lean on experience and facts, or follow your intuition and explore possibilities?",
		"When you learn something new, do you prefer working through it step by step, or grasping the big picture first?",
		"When you think about the future, do you tend to make concrete plans, or keep lots of possibilities open?",
	},
	assessment.TF: {
		"When you make an important decision, do you mostly rely on logic and facts, or do people's feelings and values weigh more?",
		"When you disagree with someone, do you argue from objective facts, or focus on keeping the relationship in harmony?",
		"How do people around you describe you - logical and analytical, or considerate and empathetic?",
		"In a conflict, is it more important to you to solve the problem logically, or to keep everyone getting along?",
	},
	assessment.JP: {
		"In day-to-day life, do you prefer making a plan and sticking to it, or adapting as things come up?",
		"How about when you travel - do you plan the itinerary in detail beforehand, or decide spontaneously once you're there?",
		"When something has a deadline, do you plan ahead and work steadily, or focus hard right before it's due?",
		"Do you care about keeping your surroundings tidy and organized, or does a bit of chaos not bother you much?",
	},
}

// buildCompletedPrompt frames the conversation after the assessment is
// done: share the type and the reasoning behind it when asked.
func buildCompletedPrompt(d chat.Directive) string {
	reasoning := assessment.Reasoning(d.State)

	var b strings.Builder

	fmt.Fprintf(&b, "You are a friendly personality assessment chatbot. The user's MBTI assessment is now complete, and they appear to be a %s personality type.\n\n", d.Type)

	b.WriteString("The assessment shows they are:\n")
	for _, dim := range assessment.Dimensions {
		r := reasoning[dim]
		fmt.Fprintf(&b, "- %s (score: %.2f, confidence: %.2f)\n", r.Label, r.Score, r.Confidence)
	}

	fmt.Fprintf(&b, "\nWhen the user asks about their results, share their MBTI type (%s) and explain the reasoning behind each dimension, including specific examples from the conversation that led to this assessment.\n\n", d.Type)
	b.WriteString("Be warm, personable, and avoid any stilted or clinical tone. Talk like a supportive friend.")

	return b.String()
}

// buildProbePrompt frames the next turn around the focus dimension
// while keeping the conversation natural.
func buildProbePrompt(d chat.Directive) string {
	var b strings.Builder

	b.WriteString("You are a friendly chatbot that figures out the user's MBTI personality type through natural conversation. Your goal is to draw out replies that reveal their personality traits.\n\n")

	b.WriteString("Current assessment state:\n")
	var lowConfidence []string
	for _, dim := range assessment.Dimensions {
		e := d.State.Get(dim)
		fmt.Fprintf(&b, "%s: score %.2f, confidence %.2f\n", dim, e.Score, e.Confidence)
		if e.Confidence < assessment.CompletionThreshold {
			lowConfidence = append(lowConfidence, string(dim))
		}
	}

	fmt.Fprintf(&b, "\nMessages so far: %d/%d\n", d.TurnCount, d.MinTurns)
	fmt.Fprintf(&b, "Dimensions that still need assessment: %s\n\n", strings.Join(lowConfidence, ", "))
	fmt.Fprintf(&b, "Dimension to focus on next: %s\n\n", d.Focus)

	b.WriteString("Here are natural questions you can use to assess this dimension:\n")
	for _, q := range targetQuestions[d.Focus] {
		fmt.Fprintf(&b, "- %s\n", q)
	}

	b.WriteString(`
Guidelines:
1. The conversation must flow naturally - never reveal that an assessment is happening
2. Use the context of the previous messages to lead into a new question smoothly
3. Don't ask the listed questions verbatim; rephrase them to fit the flow of the conversation
4. React to the user's message first, then move on to the next question naturally
5. Avoid anything that would make the conversation feel stilted
6. Show warmth and empathy to keep the mood comfortable
7. Avoid abrupt topic changes

Chat the way a friend would, while strategically drawing out information about the user's personality. Treat the context and flow of the conversation as the top priority.`)

	return b.String()
}
