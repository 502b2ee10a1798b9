package seeds

import (
	"fmt"
	"log"

	"github.com/pcrims/finpath-backend/internal/database"
	"github.com/pcrims/finpath-backend/internal/models"
)

type questionSeed struct {
	Prompt  string
	Choices []string
	Correct int
	Explain string
}

type lessonSeed struct {
	ID        string
	Title     string
	XP        int
	Body      []string
	CTA       string
	Questions []questionSeed
}

type chapterSeed struct {
	ID      string
	Title   string
	Lessons []lessonSeed
}

type trackSeed struct {
	ID       string
	Name     string
	Tagline  string
	Chapters []chapterSeed
}

func yesNo(prompt, explain string) questionSeed {
	return questionSeed{Prompt: prompt, Choices: []string{"Yes", "No"}, Correct: 0, Explain: explain}
}

// The authored FinPath catalog. Answer keys are explicit on every question;
// the authoring convention of putting the correct choice first is preserved
// in the data but nothing depends on it.
func catalog() []trackSeed {
	return []trackSeed{
		{
			ID:      "foundations",
			Name:    "Foundations",
			Tagline: "Money basics for everyday life",
			Chapters: []chapterSeed{
				{
					ID:    "mindset",
					Title: "Money Mindset & Habits",
					Lessons: []lessonSeed{
						{
							ID:    "why-literacy",
							Title: "Why Financial Literacy Matters in Canada",
							XP:    10,
							Body: []string{
								"If you don't manage your money, your money will manage you.",
								"Steady 5-minute lessons compound.",
							},
							CTA: "You've unlocked the Money Starter badge!",
							Questions: []questionSeed{
								yesNo("Money skills help avoid bank fees.", "Knowing account terms is the easiest fee to dodge."),
								{Prompt: "Literacy only matters for high earners.", Choices: []string{"False", "True"}, Correct: 0,
									Explain: "Budgeting and fee awareness matter at every income."},
							},
						},
						{
							ID:    "goals",
							Title: "Setting Short- vs Long-Term Goals",
							XP:    10,
							Body:  []string{"Short = 1-3y. Long = 5+y.", "Use numbers & dates."},
							CTA:   "Goal Getter!",
							Questions: []questionSeed{
								{Prompt: "Which is a long-term goal?", Choices: []string{"Retirement", "A trip next year"}, Correct: 0},
								{Prompt: "Which account is designed for retirement?", Choices: []string{"RRSP", "Chequing"}, Correct: 0},
							},
						},
						{
							ID:    "pay-yourself",
							Title: "Pay Yourself First",
							XP:    10,
							Body:  []string{"Automate savings on payday.", "TFSAs are handy for short/medium goals."},
							CTA:   "Savings Machine!",
							Questions: []questionSeed{
								yesNo("Paying yourself first means saving before spending.", ""),
								{Prompt: "Why automate savings?", Choices: []string{"Removes the willpower step", "It earns more interest"}, Correct: 0},
							},
						},
						{
							ID:        "habits",
							Title:     "Habits Build Wealth",
							XP:        15,
							Body:      []string{"Consistent habits beat windfalls.", "Start early for compounding."},
							CTA:       "Compound Champ!",
							Questions: []questionSeed{yesNo("Starting early helps compounding.", "")},
						},
					},
				},
				{
					ID:    "budgeting",
					Title: "Budgeting Basics",
					Lessons: []lessonSeed{
						{
							ID:    "what-budget",
							Title: "What is a Budget?",
							XP:    10,
							Body:  []string{"A plan for income and expenses."},
							CTA:   "Budget Boss!",
							Questions: []questionSeed{
								{Prompt: "A budget only tracks spending.", Choices: []string{"False", "True"}, Correct: 0,
									Explain: "It plans income as well as expenses."},
								{Prompt: "What is a budget's main purpose?", Choices: []string{"Planning income and expenses", "Restricting all fun spending"}, Correct: 0},
							},
						},
						{
							ID:    "503020",
							Title: "The 50/30/20 Rule",
							XP:    10,
							Body:  []string{"50% needs / 30% wants / 20% save+debt (starter)."},
							CTA:   "Rule Master!",
							Questions: []questionSeed{
								{Prompt: "What percentage goes to saving?", Choices: []string{"20%", "50%"}, Correct: 0},
								{Prompt: "Wants should be 50%.", Choices: []string{"False", "True"}, Correct: 0},
							},
						},
						{
							ID:        "tracking",
							Title:     "Tracking Without Burnout",
							XP:        10,
							Body:      []string{"Track weekly; review monthly."},
							CTA:       "Budget Balance!",
							Questions: []questionSeed{yesNo("Monthly reviews help.", "")},
						},
					},
				},
				{
					ID:    "banking",
					Title: "Banking in Canada",
					Lessons: []lessonSeed{
						{
							ID:    "chs",
							Title: "Chequing vs Savings",
							XP:    10,
							Body:  []string{"Chequing = daily; Savings = interest."},
							CTA:   "Account Aware!",
							Questions: []questionSeed{
								{Prompt: "Which account is for daily spending?", Choices: []string{"Chequing", "Savings"}, Correct: 0},
								yesNo("Savings accounts pay interest.", ""),
							},
						},
						{
							ID:    "fees",
							Title: "Avoiding Bank Fees",
							XP:    10,
							Body:  []string{"Pick the right account; avoid out-of-network ATMs."},
							CTA:   "Fee Fighter!",
							Questions: []questionSeed{
								{Prompt: "You must always pay bank fees.", Choices: []string{"False", "True"}, Correct: 0,
									Explain: "Many accounts waive fees with minimum balances."},
							},
						},
					},
				},
			},
		},
		{
			ID:      "core",
			Name:    "Core Investing",
			Tagline: "From first dollar to diversified portfolio",
			Chapters: []chapterSeed{
				{
					ID:    "investing-101",
					Title: "Investing 101",
					Lessons: []lessonSeed{
						{
							ID:    "why-invest",
							Title: "Why Invest",
							XP:    10,
							Body:  []string{"Inflation erodes buying power.", "Investing adds growth & compounding."},
							CTA:   "On your way!",
							Questions: []questionSeed{
								yesNo("Compounding grows faster the longer you wait.", ""),
								{Prompt: "Does investing eliminate risk?", Choices: []string{"No", "Yes"}, Correct: 0},
							},
						},
						{
							ID:    "risk-return",
							Title: "Risk & Return",
							XP:    10,
							Body:  []string{"Higher potential return comes with higher risk.", "Match risk to time horizon."},
							CTA:   "Risk Aware!",
							Questions: []questionSeed{
								{Prompt: "More risk always means more return.", Choices: []string{"False", "True"}, Correct: 0},
								yesNo("Time horizon matters.", ""),
							},
						},
						{
							ID:    "indexing",
							Title: "Index Funds & ETFs",
							XP:    10,
							Body:  []string{"Broad diversification, low costs.", "Common core holding for many investors."},
							CTA:   "Index Initiate!",
							Questions: []questionSeed{
								{Prompt: "Are ETFs active or passive by default?", Choices: []string{"Passive", "Active"}, Correct: 0},
								yesNo("MER matters.", "Fees compound against you just like returns compound for you."),
							},
						},
						{
							ID:    "accounts",
							Title: "Accounts: TFSA, RRSP, FHSA",
							XP:    15,
							Body:  []string{"Tax-advantaged Canadian accounts.", "Use the right wrapper for the goal."},
							CTA:   "Account Smart!",
							Questions: []questionSeed{
								yesNo("RRSP withdrawals are taxed.", ""),
								yesNo("The FHSA is for first homes.", ""),
							},
						},
					},
				},
				{
					ID:    "diversification",
					Title: "Diversification & Allocation",
					Lessons: []lessonSeed{
						{
							ID:    "why-div",
							Title: "Why Diversify",
							XP:    10,
							Body:  []string{"Don't put all eggs in one basket."},
							CTA:   "Spread Out!",
							Questions: []questionSeed{
								yesNo("Diversification reduces single-stock risk.", ""),
								{Prompt: "Diversification guarantees gains.", Choices: []string{"False", "True"}, Correct: 0},
							},
						},
						{
							ID:    "allocation",
							Title: "Asset Allocation",
							XP:    10,
							Body:  []string{"Your stock/bond split drives most of your outcome."},
							CTA:   "Mix Master!",
							Questions: []questionSeed{
								{Prompt: "What drives most long-run portfolio outcomes?", Choices: []string{"Asset allocation", "Stock picking"}, Correct: 0},
							},
						},
					},
				},
			},
		},
		{
			ID:      "advanced",
			Name:    "Advanced Strategies",
			Tagline: "Beyond the basics",
			Chapters: []chapterSeed{
				{
					ID:    "behavior",
					Title: "Behavioral Finance",
					Lessons: []lessonSeed{
						{
							ID:    "biases",
							Title: "Common Biases",
							XP:    10,
							Body:  []string{"Loss aversion and recency bias drive bad trades."},
							CTA:   "Bias Breaker!",
							Questions: []questionSeed{
								yesNo("Loss aversion makes losses feel worse than equal gains feel good.", ""),
							},
						},
						{
							ID:    "discipline",
							Title: "Staying the Course",
							XP:    15,
							Body:  []string{"A written plan beats improvising in a downturn."},
							CTA:   "Steady Hand!",
							Questions: []questionSeed{
								{Prompt: "What helps most in a market downturn?", Choices: []string{"A written plan", "Checking prices hourly"}, Correct: 0},
							},
						},
					},
				},
				{
					ID:    "costs-taxes",
					Title: "Costs & Taxes",
					Lessons: []lessonSeed{
						{
							ID:    "harvest",
							Title: "Tax-Loss Harvesting",
							XP:    15,
							Body:  []string{"Realized losses can offset realized gains."},
							CTA:   "Harvest Time!",
							Questions: []questionSeed{
								yesNo("Realized losses can offset realized gains.", ""),
							},
						},
					},
				},
			},
		},
	}
}

func SeedTracks() {
	log.Println("Seeding content catalog...")

	for ti, track := range catalog() {
		trackRow := models.Track{
			ID:       track.ID,
			Name:     track.Name,
			Tagline:  track.Tagline,
			Position: ti,
		}
		if err := database.DB.Save(&trackRow).Error; err != nil {
			log.Printf("Failed to seed track %s: %v", track.ID, err)
			continue
		}

		for ci, chapter := range track.Chapters {
			chapterRow := models.Chapter{
				ID:       chapter.ID,
				TrackID:  track.ID,
				Title:    chapter.Title,
				Position: ci,
			}
			if err := database.DB.Save(&chapterRow).Error; err != nil {
				log.Printf("Failed to seed chapter %s: %v", chapter.ID, err)
				continue
			}

			for li, lesson := range chapter.Lessons {
				lessonRow := models.Lesson{
					ID:        lesson.ID,
					ChapterID: chapter.ID,
					TrackID:   track.ID,
					Title:     lesson.Title,
					XP:        lesson.XP,
					Body:      lesson.Body,
					CTA:       lesson.CTA,
					Position:  li,
				}
				if err := database.DB.Save(&lessonRow).Error; err != nil {
					log.Printf("Failed to seed lesson %s: %v", lesson.ID, err)
					continue
				}

				for qi, q := range lesson.Questions {
					questionRow := models.Question{
						ID:           fmt.Sprintf("%s-q%d", lesson.ID, qi),
						LessonID:     lesson.ID,
						Prompt:       q.Prompt,
						Choices:      q.Choices,
						CorrectIndex: q.Correct,
						Explain:      q.Explain,
						Position:     qi,
					}
					if err := database.DB.Save(&questionRow).Error; err != nil {
						log.Printf("Failed to seed question %s: %v", questionRow.ID, err)
					}
				}
			}
		}
	}
}
