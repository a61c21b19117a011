package responder

// Fixed persona texts.
const (
	GreetingReply = "Hello 👋! I’m Zubaida’s Career Assistant. You can ask about her Bio, Projects, Skills, Goals, or LinkedIn."

	AcknowledgmentReply = "😊 Glad to help! You can ask me about Zubaida’s career, projects, or skills anytime."

	SkillsReply = "🛠️ Zubaida’s Skills:\n" +
		"- **Programming & ML**: Python, Scikit-learn, XGBoost, RandomForest\n" +
		"- **Web Development**: PHP, Laravel, JavaScript, HTML/CSS\n" +
		"- **Tools & Design**: Gradio, GitHub, Graphic Design\n" +
		"- **Soft Skills**: Research writing, presentation, teamwork\n"

	RefusalReply = "❌ I only answer about Zubaida’s Bio, Projects, Skills, Goals, LinkedIn, or recruiter-style interview questions."
)

var (
	greetings       = []string{"hi", "hello", "hey"}
	acknowledgments = []string{"ok", "okay", "thanks", "thank you"}
)

// RetrievedReply formats a passage retrieved from a section.
func RetrievedReply(section, text string) string {
	return "**Answer based on " + section + ":**\n\n" + text
}
