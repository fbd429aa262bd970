package web

// Experience is one role on the about page.
type Experience struct {
	Role         string
	Company      string
	Period       string
	BulletPoints []string
}

// Education is one qualification on the about page.
type Education struct {
	Degree      string
	Institution string
	Period      string
}

var (
	Intro = `A results-driven Front-End Developer with 2 years of experience in designing, developing, and deploying
	dynamic web applications. My expertise spans React.js, Next.js, and Node.js.`

	AboutMe = `I specialize in creating user-centric interfaces and enhancing performance using modern technologies.`

	Skills = []struct{ Name, Summary string }{
		{"Front-End Development", "Expert in developing responsive web applications with modern frameworks and libraries."},
		{"SEO Optimization", "Skilled at implementing organic SEO strategies to boost traffic and visibility."},
		{"UI/UX Design", "Creating intuitive user interfaces with a focus on user experience and accessibility."},
	}

	WorkHistory = []Experience{
		{
			Role:    "Junior Software Developer",
			Company: "Opalina Technologies Pvt. Ltd",
			Period:  "May 2022 - March 2024",
			BulletPoints: []string{
				"Developed and optimized the Narendra Modi Mother Project, reducing page load time by 40%.",
				"Built and managed landing pages, leading to a 25% increase in visitor engagement.",
				"Implemented a CMS for seamless content updates, decreasing update time by 50%.",
				"Developed and enhanced DKSCORE, improving responsiveness and reducing bounce rate by 30%.",
				"Executed SEO strategies, boosting organic traffic by 30% within six months.",
				"Managed DKSCORE CMS for 2 years, optimizing workflows.",
				"Designed and built a media center, increasing user retention by 20%.",
			},
		},
	}

	EducationHistory = []Education{
		{"Master of Computer Applications (MCA)", "Centre For Development Of Advanced Computing", "August 2017 - July 2020"},
		{"Bachelor of Computer Applications (BCA)", "Indira Gandhi National Open University", "July 2012 - December 2016"},
		{"Senior Secondary (XII)", "Andhra Education Society School", "January 2012 - December 2012"},
	}

	ContactEmail = "ashishmaurya290@gmail.com"
	LinkedInURL  = "https://www.linkedin.com/in/ashish-maurya-294650119"
	GitHubURL    = "https://github.com/AshishMaurya93"
)
