// Package bot implements the health assistant chat responder. The responder
// is a keyword-matching engine: an ordered list of (keyword, reply) rules is
// scanned in registration order and the first keyword contained in the
// question wins. Rule order is part of the contract ("fever" outranks
// "headache" when both appear), so rules live in a slice, never a map.
package bot

import (
	"fmt"
	"strings"
	"sync"
)

// Rule pairs a lowercase keyword with the canned reply returned when the
// keyword occurs anywhere in the question.
type Rule struct {
	Keyword string `json:"keyword"`
	Reply   string `json:"reply"`
}

// Fallback replies used when no rule matches.
const (
	greetingReply = "👋 Hello! I'm your AI Health Assistant. I can help you with questions about common health issues like fever, headache, cold, diet, exercise, stress, sleep, and more. What would you like to know?"

	appointmentReply = "📅 To book an appointment, please go to the 'Appointments' tab where you can select a doctor, date, and time slot. Our doctors are available from 9 AM to 5 PM, Monday to Saturday."

	medicationReply = "💊 For medication reminders, visit the 'Medications' tab where you can add your prescriptions and set up automatic reminders. Never miss a dose!"

	genericReply = "🤔 I'm not sure about that specific question. For personalized medical advice, please consult a qualified healthcare professional. You can also book an appointment with our doctors through the Appointments tab. Try asking about: fever, headache, cold, diet, exercise, stress, or sleep."

	// ErrorReply is returned by the HTTP layer when responding fails.
	ErrorReply = "😓 Sorry, I encountered an error. Please try again or contact support if the issue persists."
)

var greetingWords = []string{"hello", "hi", "hey"}

// defaultRules is the built-in symptom and wellness knowledge base. Order
// matters: earlier keywords shadow later ones.
var defaultRules = []Rule{
	{"fever", "🌡️ For fever: Drink plenty of water, rest well, and take paracetamol 500mg if needed. If fever persists above 102°F or lasts more than 3 days, consult a doctor immediately."},
	{"headache", "💆 For headache: Rest in a quiet, dark room, stay hydrated, reduce screen time, and try a cold compress on your forehead. If severe or persistent, consult a doctor."},
	{"cold", "🤧 For cold: Try steam inhalation, drink warm fluids like herbal tea or honey-lemon water, get adequate rest, and maintain good hygiene. Usually resolves in 7-10 days."},
	{"cough", "😷 For cough: Stay hydrated, use honey (for adults), avoid irritants like smoke, and try warm liquids with ginger. See a doctor if it persists beyond 3 weeks or worsens."},
	{"stomach", "🤢 For stomach issues: Eat bland foods (BRAT diet: Bananas, Rice, Applesauce, Toast), stay hydrated with electrolyte solutions, avoid spicy/fatty foods. If severe pain, vomiting blood, or high fever present, seek immediate medical attention."},
	{"pain", "💊 For general pain: Rest the affected area, apply ice for acute injuries or heat for muscle tension, consider over-the-counter pain relief (as directed). Persistent or severe pain requires medical evaluation."},
	{"stress", "🧘 For stress management: Practice deep breathing exercises, engage in regular physical activity, maintain 7-8 hours of sleep, talk to someone you trust. Consider meditation, yoga, or professional counseling."},
	{"sleep", "😴 For better sleep: Maintain consistent sleep schedule (same bedtime/wake time), avoid screens 1 hour before bed, keep room cool (60-67°F) and dark, avoid caffeine after 2 PM, try relaxation techniques."},
	{"diet", "🥗 For healthy diet: Include 5 servings of fruits and vegetables daily, choose whole grains over refined, eat lean proteins (fish, chicken, legumes), limit processed foods and added sugars. Drink 8 glasses of water daily."},
	{"exercise", "🏃 For exercise: Aim for 150 minutes of moderate activity or 75 minutes of vigorous activity weekly. Mix cardio (walking, cycling) and strength training. Start slowly, warm up properly, and listen to your body."},
	{"diabetes", "🩺 For diabetes management: Monitor blood sugar regularly, follow prescribed medication, eat balanced meals with controlled carbs, exercise regularly, maintain healthy weight. Regular check-ups are crucial."},
	{"blood pressure", "❤️ For blood pressure: Reduce sodium intake, eat potassium-rich foods (bananas, spinach), exercise regularly, maintain healthy weight, limit alcohol, manage stress. Monitor regularly and follow doctor's advice."},
	{"weight", "⚖️ For healthy weight: Create moderate calorie deficit (500 cal/day for 1 lb/week loss), eat protein-rich foods, increase fiber intake, stay hydrated, get adequate sleep, combine diet with exercise."},
	{"anxiety", "😰 For anxiety: Practice mindfulness and deep breathing, maintain regular exercise routine, limit caffeine and alcohol, establish healthy sleep habits, consider talking to a mental health professional."},
}

// Engine matches questions against an ordered rule list. Safe for concurrent
// use; Register appends rules at runtime.
type Engine struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewEngine creates an engine preloaded with the built-in rules.
func NewEngine() *Engine {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return &Engine{rules: rules}
}

// Register appends a rule to the end of the match order. The keyword is
// normalized to lowercase.
func (e *Engine) Register(keyword, reply string) error {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return fmt.Errorf("rule keyword is required")
	}
	if reply == "" {
		return fmt.Errorf("rule reply is required")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, Rule{Keyword: keyword, Reply: reply})
	return nil
}

// Rules returns a copy of the current rule list in match order.
func (e *Engine) Rules() []Rule {
	e.mu.RLock()
	defer e.mu.RUnlock()
	cp := make([]Rule, len(e.rules))
	copy(cp, e.rules)
	return cp
}

// Respond produces the reply for a question. Matching is case-insensitive
// substring containment; the first rule whose keyword occurs in the question
// wins. Questions with no matching rule fall through to the greeting,
// appointment and medication hints, then to the generic reply. Respond never
// returns an empty string.
func (e *Engine) Respond(question string) string {
	q := strings.ToLower(question)

	e.mu.RLock()
	for _, r := range e.rules {
		if strings.Contains(q, r.Keyword) {
			e.mu.RUnlock()
			return r.Reply
		}
	}
	e.mu.RUnlock()

	for _, w := range greetingWords {
		if strings.Contains(q, w) {
			return greetingReply
		}
	}
	if strings.Contains(q, "appointment") {
		return appointmentReply
	}
	if strings.Contains(q, "medication") || strings.Contains(q, "medicine") {
		return medicationReply
	}
	return genericReply
}
