package faq

// DefaultEntries returns the recruiter questions in match order.
func DefaultEntries() []Entry {
	return []Entry{
		{
			Name:     "hire-me",
			Question: "why should we hire you",
			Answer: "✅ You should consider hiring me because I bring a strong mix of **technical expertise and dedication**:\n" +
				"- Proven skills in **Machine Learning, Data Science, and Full-Stack Development**\n" +
				"- Hands-on experience with projects like **Sales Prediction Hybrid Model**\n" +
				"- Strong foundation in **Python, PHP, Java, and ML tools (Scikit-learn, XGBoost, RandomForest)**\n" +
				"- Committed to building **safe, impactful AI solutions**\n" +
				"- Excellent **research, teamwork, and communication skills**\n\n" +
				"I believe I can add real value to your team and grow with your organization 🚀.",
		},
		{
			Name:     "about-yourself",
			Question: "tell me about yourself",
			Answer: "👩‍💻 I am Zubaida Bibi, a passionate Computer Science graduate with expertise in **Machine Learning and Full-Stack Development**. " +
				"I’ve built projects like a **Real-time Sales Prediction Hybrid Model** and I’m actively preparing for an **MS/MPhil abroad with scholarship**. " +
				"I enjoy solving real-world problems with AI and aspire to contribute to impactful, safe, and innovative AI projects.",
		},
		{
			Name:     "strengths",
			Question: "what are your strengths",
			Answer: "💪 My strengths include:\n" +
				"- Quick learner, especially with new technologies\n" +
				"- Strong analytical and problem-solving skills\n" +
				"- Ability to work independently and in teams\n" +
				"- Good research and presentation skills\n",
		},
		{
			Name:     "weaknesses",
			Question: "what are your weaknesses",
			Answer: "⚡ I sometimes get deeply focused on one task for too long, but I’ve been working on improving my time management " +
				"by breaking projects into smaller milestones and setting deadlines.",
		},
		{
			Name:     "career-goals",
			Question: "what are your career goals",
			Answer: "🎯 My career goal is to pursue an **MS/MPhil abroad (UK/USA)** with a scholarship, and then grow into a role as a **Machine Learning Engineer or Data Scientist**. " +
				"Ultimately, I want to contribute to impactful, safe AI projects that solve real-world problems.",
		},
		{
			Name:     "relocation",
			Question: "are you open to relocation or remote work",
			Answer:   "🌍 Yes! I am open to **relocation abroad (UK/USA)** for higher studies and job opportunities, and also to fully **remote ML/Data Science roles**.",
		},
		{
			Name:     "start-date",
			Question: "when can you start",
			Answer:   "📅 I am available to start **immediately** for remote roles, and open to relocation opportunities depending on visa and sponsorship timelines.",
		},
	}
}
