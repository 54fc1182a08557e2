package suggest

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

func summaryPool(info types.PersonalInfo) []string {
	named := strings.TrimSpace(info.FullName) != ""
	pick := func(withName, without string) string {
		if named {
			return withName
		}
		return without
	}
	return []string{
		"Experienced professional with expertise in " + pick("developing innovative solutions", "technology and business") +
			". Proven track record of delivering high-quality results and driving organizational success through strategic thinking and collaborative leadership.",
		"Results-driven professional with a passion for " + pick("excellence and innovation", "continuous learning") +
			". Strong background in project management, team collaboration, and strategic problem-solving with a focus on delivering measurable outcomes.",
		"Dynamic and motivated professional with extensive experience in " + pick("leading cross-functional teams", "modern technologies") +
			". Committed to driving business growth through innovative solutions and exceptional stakeholder relationships.",
		"Accomplished professional with a strong foundation in " + pick("strategic planning and execution", "industry best practices") +
			". Demonstrated ability to adapt to evolving business needs while maintaining high standards of quality and performance.",
	}
}

var jobDescriptionPool = []string{
	"Led cross-functional teams to deliver innovative solutions that improved operational efficiency by 25%. Collaborated with stakeholders to define project requirements and ensure successful implementation of key initiatives.",
	"Developed and implemented strategic processes that enhanced team productivity and reduced project delivery time by 30%. Mentored junior team members and fostered a culture of continuous improvement.",
	"Managed complex projects from conception to completion, ensuring adherence to quality standards and timeline requirements. Successfully delivered multiple high-impact initiatives that drove business growth.",
	"Spearheaded the development of innovative solutions that streamlined operations and improved customer satisfaction. Worked closely with leadership to align project goals with organizational objectives.",
	"Drove the implementation of best practices and process improvements that resulted in significant cost savings and enhanced operational performance. Built strong relationships with key stakeholders.",
}

func educationDescriptionPool(degree string) []string {
	d := strings.ToLower(degree)
	pick := func(keyword, matched, otherwise string) string {
		if strings.Contains(d, keyword) {
			return matched
		}
		return otherwise
	}
	return []string{
		"Relevant coursework included advanced topics in " +
			pick("computer", "algorithms, data structures, and software engineering", "core subject areas") +
			". Maintained strong academic performance while actively participating in student organizations.",
		"Completed comprehensive curriculum covering " +
			pick("business", "strategic management, finance, and operations", "theoretical and practical applications") +
			". Engaged in research projects and collaborative learning experiences.",
		"Achieved academic excellence while developing strong analytical and critical thinking skills. Participated in " +
			pick("engineering", "engineering design projects", "academic research initiatives") +
			" and leadership activities.",
		"Focused on " +
			pick("science", "scientific research methodologies and data analysis", "core competencies and practical applications") +
			". Built a solid foundation for professional growth and continuous learning.",
	}
}

type skillPool struct {
	keywords []string
	skills   []types.SkillSuggestion
}

// skillPools are checked in order; the first pool with a keyword contained in the
// lowercased job title wins.
var skillPools = []skillPool{
	{
		keywords: []string{"engineer", "developer"},
		skills: []types.SkillSuggestion{
			{Name: "JavaScript", Level: types.LevelAdvanced, Category: "Programming Languages"},
			{Name: "React", Level: types.LevelAdvanced, Category: "Frontend Frameworks"},
			{Name: "Node.js", Level: types.LevelIntermediate, Category: "Backend Technologies"},
			{Name: "TypeScript", Level: types.LevelAdvanced, Category: "Programming Languages"},
			{Name: "Git", Level: types.LevelAdvanced, Category: "Version Control"},
		},
	},
	{
		keywords: []string{"data", "scientist"},
		skills: []types.SkillSuggestion{
			{Name: "Python", Level: types.LevelExpert, Category: "Programming Languages"},
			{Name: "Machine Learning", Level: types.LevelAdvanced, Category: "Data Science"},
			{Name: "SQL", Level: types.LevelAdvanced, Category: "Databases"},
			{Name: "TensorFlow", Level: types.LevelIntermediate, Category: "ML Frameworks"},
			{Name: "Data Visualization", Level: types.LevelAdvanced, Category: "Data Science"},
		},
	},
	{
		keywords: []string{"manager", "project"},
		skills: []types.SkillSuggestion{
			{Name: "Agile Methodology", Level: types.LevelExpert, Category: "Project Management"},
			{Name: "Scrum", Level: types.LevelAdvanced, Category: "Project Management"},
			{Name: "Risk Management", Level: types.LevelAdvanced, Category: "Project Management"},
			{Name: "Stakeholder Management", Level: types.LevelExpert, Category: "Leadership"},
			{Name: "Budget Planning", Level: types.LevelIntermediate, Category: "Finance"},
		},
	},
}

var defaultSkills = []types.SkillSuggestion{
	{Name: "Communication", Level: types.LevelAdvanced, Category: "Soft Skills"},
	{Name: "Problem Solving", Level: types.LevelAdvanced, Category: "Soft Skills"},
	{Name: "Team Collaboration", Level: types.LevelAdvanced, Category: "Soft Skills"},
	{Name: "Time Management", Level: types.LevelAdvanced, Category: "Soft Skills"},
	{Name: "Leadership", Level: types.LevelIntermediate, Category: "Soft Skills"},
}

func skillsFor(jobTitle string) []types.SkillSuggestion {
	title := strings.ToLower(jobTitle)
	for _, pool := range skillPools {
		for _, kw := range pool.keywords {
			if strings.Contains(title, kw) {
				return pool.skills
			}
		}
	}
	return defaultSkills
}

var actionVerbs = []string{"Spearheaded", "Implemented", "Developed", "Led", "Optimized", "Enhanced", "Delivered"}

var improvementMetrics = []string{"25%", "30%", "2x", "40%", "50%"}
