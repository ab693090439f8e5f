// Package mockdata provides the seed data of the platform.
// Every call builds fresh values: callers never share mutable state.
package mockdata

import (
	"github.com/trezcool/mentorhub/core"
	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/message"
	"github.com/trezcool/mentorhub/core/notification"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/stats"
	"github.com/trezcool/mentorhub/core/user"
)

var (
	date = core.MustParseDate
	ts   = core.MustParseTime
)

func firstStepsBadge(earnedAt string) user.Badge {
	return user.Badge{ID: "1", Name: "First Steps", Description: "Completed first program", Icon: "🎯", EarnedAt: date(earnedAt)}
}

func knowledgeSeekerBadge(earnedAt string) user.Badge {
	return user.Badge{ID: "2", Name: "Knowledge Seeker", Description: "Downloaded 10+ materials", Icon: "📚", EarnedAt: date(earnedAt)}
}

// Students returns the students of mentor "1".
func Students() []user.User {
	return []user.User{
		{
			ID:       "2",
			Name:     "Alex Johnson",
			Email:    "alex@example.com",
			Role:     user.RoleStudent,
			JoinDate: date("2024-01-20"),
			Points:   850,
			Level:    2,
			Badges:   []user.Badge{firstStepsBadge("2024-02-01")},
			MentorID: "1",
			Student: &user.StudentProfile{
				EnrolledPrograms:      []string{"1", "2"},
				LastActivity:          ts("2024-02-14T10:30:00Z"),
				TotalLessonsCompleted: 8,
				AverageProgress:       65,
			},
		},
		{
			ID:       "3",
			Name:     "Sarah Chen",
			Email:    "sarah@example.com",
			Role:     user.RoleStudent,
			JoinDate: date("2024-02-01"),
			Points:   1420,
			Level:    3,
			Badges:   []user.Badge{firstStepsBadge("2024-02-10"), knowledgeSeekerBadge("2024-02-20")},
			MentorID: "1",
			Student: &user.StudentProfile{
				EnrolledPrograms:      []string{"1", "3"},
				LastActivity:          ts("2024-02-15T14:20:00Z"),
				TotalLessonsCompleted: 12,
				AverageProgress:       80,
			},
		},
		{
			ID:       "4",
			Name:     "Mike Rodriguez",
			Email:    "mike@example.com",
			Role:     user.RoleStudent,
			JoinDate: date("2024-01-15"),
			Points:   650,
			Level:    2,
			Badges:   []user.Badge{},
			MentorID: "1",
			Student: &user.StudentProfile{
				EnrolledPrograms:      []string{"2"},
				LastActivity:          ts("2024-02-13T09:15:00Z"),
				TotalLessonsCompleted: 5,
				AverageProgress:       45,
			},
		},
	}
}

func Mentors() []user.User {
	return []user.User{
		{
			ID:       "5",
			Name:     "Dr. Sarah Johnson",
			Email:    "sarah.mentor@example.com",
			Role:     user.RoleMentor,
			JoinDate: date("2023-08-15"),
			Points:   2500,
			Level:    5,
			Badges: []user.Badge{
				{ID: "3", Name: "Master Mentor", Description: "Mentored 50+ students", Icon: "🏆", EarnedAt: date("2024-01-01")},
			},
			Mentor: &user.MentorProfile{
				Specialization:  "Startup Strategy & Business Development",
				Bio:             "Former startup founder with 15+ years of experience in building and scaling businesses.",
				StudentsCount:   12,
				ProgramsCreated: 8,
			},
		},
		{
			ID:       "6",
			Name:     "Michael Chen",
			Email:    "michael.mentor@example.com",
			Role:     user.RoleMentor,
			JoinDate: date("2023-10-20"),
			Points:   1800,
			Level:    4,
			Badges:   []user.Badge{},
			Mentor: &user.MentorProfile{
				Specialization:  "Digital Marketing & Growth",
				Bio:             "Marketing expert who has helped 100+ startups achieve sustainable growth.",
				StudentsCount:   8,
				ProgramsCreated: 5,
			},
		},
	}
}

// Directory returns the students followed by the mentors.
func Directory() []user.User {
	return append(Students(), Mentors()...)
}

// Messages are ordered most recent first.
func Messages() []message.Message {
	return []message.Message{
		{
			ID:         "1",
			SenderID:   "1",
			ReceiverID: "2",
			Content:    "Great progress on your business plan! I have some feedback for you.",
			Timestamp:  ts("2024-02-15T10:30:00Z"),
			Type:       message.TypeMessage,
		},
		{
			ID:         "2",
			SenderID:   "1",
			ReceiverID: "2",
			Content:    "Remember to focus on your target market research this week.",
			Timestamp:  ts("2024-02-14T15:45:00Z"),
			Read:       true,
			Type:       message.TypeNote,
		},
		{
			ID:         "3",
			SenderID:   "1",
			ReceiverID: "3",
			Content:    "Excellent work on the marketing strategy assignment!",
			Timestamp:  ts("2024-02-13T16:20:00Z"),
			Read:       true,
			Type:       message.TypeMessage,
		},
		{
			ID:         "4",
			SenderID:   "1",
			ReceiverID: "4",
			Content:    "Please review the financial planning materials before our next session.",
			Timestamp:  ts("2024-02-12T11:15:00Z"),
			Type:       message.TypeNote,
		},
	}
}

func PlatformStats() stats.PlatformStats {
	return stats.PlatformStats{
		TotalUsers:     523,
		TotalMentors:   45,
		TotalStudents:  478,
		TotalPrograms:  156,
		TotalLessons:   1247,
		ActiveUsers:    342,
		CompletionRate: 87,
	}
}

func RecentActivity() []stats.Activity {
	return []stats.Activity{
		{Action: "New student registered", User: "John Doe", Time: "2 minutes ago", Type: "user"},
		{Action: "Program completed", User: "Sarah Chen", Time: "15 minutes ago", Type: "completion"},
		{Action: "New lesson created", User: "Dr. Johnson", Time: "1 hour ago", Type: "content"},
		{Action: "Mentor joined platform", User: "Mike Rodriguez", Time: "2 hours ago", Type: "mentor"},
		{Action: "Achievement unlocked", User: "Alex Johnson", Time: "3 hours ago", Type: "achievement"},
	}
}

func lesson(id, title, descr, duration string, done bool, typ program.LessonType, content, videoURL, docURL, created string) program.Lesson {
	return program.Lesson{
		ID:          id,
		Title:       title,
		Description: descr,
		Duration:    duration,
		Completed:   done,
		Type:        typ,
		Content:     content,
		VideoURL:    videoURL,
		DocumentURL: docURL,
		CreatedAt:   ts(created),
		UpdatedAt:   ts(created),
	}
}

// Programs returns the seeded programs. Their progress figures are the published ones.
func Programs() []program.Program {
	return []program.Program{
		{
			ID:          "1",
			Title:       "Startup Fundamentals",
			Description: "Learn the basics of starting and running a successful startup",
			Mentor:      "Sarah Johnson",
			Duration:    "8 weeks",
			Progress:    75,
			Status:      program.StatusActive,
			StartDate:   date("2024-02-01"),
			EndDate:     date("2024-03-29"),
			Lessons: []program.Lesson{
				lesson("1", "Market Research Essentials", "Understanding your target market", "45 min", true, program.LessonVideo,
					"Understanding your target market is crucial for startup success...", "https://example.com/video1", "", "2024-01-15T10:00:00Z"),
				lesson("2", "Business Model Canvas", "Creating your business model", "60 min", true, program.LessonExercise,
					"Learn to create a comprehensive business model canvas...", "", "https://example.com/doc1", "2024-01-16T10:00:00Z"),
				lesson("3", "MVP Development", "Building your minimum viable product", "90 min", false, program.LessonVideo,
					"MVP development strategies and best practices...", "https://example.com/video2", "", "2024-01-17T10:00:00Z"),
			},
		},
		{
			ID:          "2",
			Title:       "Digital Marketing Mastery",
			Description: "Master digital marketing strategies for modern entrepreneurs",
			Mentor:      "Michael Chen",
			Duration:    "6 weeks",
			Progress:    30,
			Status:      program.StatusActive,
			StartDate:   date("2024-02-15"),
			EndDate:     date("2024-03-29"),
			Lessons: []program.Lesson{
				lesson("4", "Social Media Strategy", "Building your social presence", "50 min", true, program.LessonVideo,
					"Building your social media presence effectively...", "https://example.com/video3", "", "2024-01-20T10:00:00Z"),
				lesson("5", "Content Marketing", "Creating engaging content", "40 min", false, program.LessonDocument,
					"Content marketing strategies for entrepreneurs...", "", "https://example.com/doc2", "2024-01-21T10:00:00Z"),
			},
		},
		{
			ID:          "3",
			Title:       "Financial Planning for Startups",
			Description: "Master the financial aspects of entrepreneurship",
			Mentor:      "Emily Rodriguez",
			Duration:    "4 weeks",
			Progress:    0,
			Status:      program.StatusPending,
			StartDate:   date("2024-03-01"),
			EndDate:     date("2024-03-29"),
			Lessons: []program.Lesson{
				lesson("6", "Financial Fundamentals", "Basic financial concepts for entrepreneurs", "60 min", false, program.LessonVideo,
					"Learn the essential financial concepts every entrepreneur needs to know...", "https://example.com/video4", "", "2024-02-01T10:00:00Z"),
			},
		},
	}
}

func Materials() []material.Material {
	return []material.Material{
		{
			ID: "1", Title: "Business Plan Template", Description: "Comprehensive template for creating your business plan",
			Type: material.TypeTemplate, Category: "Planning", Author: "Platform Team", UploadDate: date("2024-01-15"),
			Downloads: 247, FileURL: "https://example.com/business-plan-template.pdf",
		},
		{
			ID: "2", Title: "Market Research Guide", Description: "Step-by-step guide to conducting market research",
			Type: material.TypeGuide, Category: "Research", Author: "Sarah Johnson", UploadDate: date("2024-01-20"),
			Downloads: 156, FileURL: "https://example.com/market-research-guide.pdf",
		},
		{
			ID: "3", Title: "Pitch Deck Fundamentals", Description: "Video tutorial on creating compelling pitch decks",
			Type: material.TypeVideo, Category: "Pitching", Author: "Michael Chen", UploadDate: date("2024-02-01"),
			Downloads: 89, FileURL: "https://example.com/pitch-deck-video.mp4",
		},
		{
			ID: "4", Title: "Financial Projections Worksheet", Description: "Excel template for financial planning and projections",
			Type: material.TypeTemplate, Category: "Finance", Author: "Emily Rodriguez", UploadDate: date("2024-02-10"),
			Downloads: 134, FileURL: "https://example.com/financial-projections.xlsx",
		},
		{
			ID: "5", Title: "Customer Interview Script", Description: "Template for conducting effective customer interviews",
			Type: material.TypeTemplate, Category: "Research", Author: "Sarah Johnson", UploadDate: date("2024-02-05"),
			Downloads: 98, FileURL: "https://example.com/customer-interview-script.pdf",
		},
		{
			ID: "6", Title: "Social Media Calendar Template", Description: "Monthly planning template for social media content",
			Type: material.TypeTemplate, Category: "Marketing", Author: "Michael Chen", UploadDate: date("2024-02-12"),
			Downloads: 76, FileURL: "https://example.com/social-media-calendar.xlsx",
		},
	}
}

func Notifications() []notification.Notification {
	return []notification.Notification{
		{
			ID: "1", Title: "New Achievement Unlocked!", Type: notification.TypeAchievement, Timestamp: ts("2024-02-15T10:30:00Z"),
			Message: `You've earned the "Knowledge Seeker" badge for downloading 10+ materials.`,
		},
		{
			ID: "2", Title: "Program Update", Type: notification.TypeInfo, Timestamp: ts("2024-02-14T15:45:00Z"),
			Message: `New lesson available in "Startup Fundamentals" program.`,
		},
		{
			ID: "3", Title: "Mentor Session Reminder", Type: notification.TypeWarning, Read: true, Timestamp: ts("2024-02-13T09:15:00Z"),
			Message: "Your 1-on-1 session with Sarah Johnson is scheduled for tomorrow at 2 PM.",
		},
		{
			ID: "4", Title: "Program Completed", Type: notification.TypeSuccess, Read: true, Timestamp: ts("2024-02-10T16:20:00Z"),
			Message: `Congratulations! You've completed the "Digital Marketing Basics" program.`,
		},
		{
			ID: "5", Title: "New Material Available", Type: notification.TypeInfo, Timestamp: ts("2024-02-12T11:30:00Z"),
			Message: "A new financial planning template has been added to your resources.",
		},
		{
			ID: "6", Title: "Weekly Progress Report", Type: notification.TypeSuccess, Read: true, Timestamp: ts("2024-02-11T18:00:00Z"),
			Message: "You've completed 3 lessons this week. Keep up the great work!",
		},
	}
}
