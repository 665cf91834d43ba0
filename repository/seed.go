package repository

import (
	"encoding/json"
	"time"
)

// Seed loads the demo roster on first boot. Runs once; the marker key keeps
// re-deployments from clobbering real data.
func Seed(store Store) error {
	_, seeded, err := store.Get(KeySeeded)
	if err != nil || seeded {
		return err
	}
	if err := saveCollection(store, KeyPlayers, seedPlayers()); err != nil {
		return err
	}
	if err := saveCollection(store, KeyEvents, seedEvents()); err != nil {
		return err
	}
	if err := saveCollection(store, KeyRatings, seedRatings()); err != nil {
		return err
	}
	if err := saveCollection(store, KeyAttendance, seedAttendance()); err != nil {
		return err
	}
	marker, err := json.Marshal(true)
	if err != nil {
		return err
	}
	return store.Set(KeySeeded, marker)
}

func seedPlayers() []Player {
	return []Player{
		{
			Id: "p1", FirstName: "Liam", LastName: "Torres", JerseyNumber: 1,
			DateOfBirth: "2016-03-15", Position: PositionGoalkeeper,
			ParentName: "Maria Torres", ParentEmail: "maria.torres@email.com",
			ParentPhone: "555-0101", Notes: "Great reflexes, needs to work on communication",
			ParentAccessCode: "LT1234", IsActive: true, JoinedDate: "2025-09-01",
		},
		{
			Id: "p2", FirstName: "Noah", LastName: "Kim", JerseyNumber: 4,
			DateOfBirth: "2015-07-22", Position: PositionDefender,
			ParentName: "James Kim", ParentEmail: "james.kim@email.com",
			ParentPhone: "555-0102", Notes: "Strong in the air, improving first touch",
			ParentAccessCode: "NK4321", IsActive: true, JoinedDate: "2025-09-01",
		},
		{
			Id: "p3", FirstName: "Emma", LastName: "Patel", JerseyNumber: 7,
			DateOfBirth: "2016-01-10", Position: PositionMidfielder,
			ParentName: "Priya Patel", ParentEmail: "priya.patel@email.com",
			ParentPhone: "555-0103", Notes: "Excellent vision, needs to shoot more",
			ParentAccessCode: "EP7777", IsActive: true, JoinedDate: "2025-09-01",
		},
		{
			Id: "p4", FirstName: "Aiden", LastName: "Johnson", JerseyNumber: 9,
			DateOfBirth: "2015-11-05", Position: PositionForward,
			ParentName: "Sarah Johnson", ParentEmail: "sarah.j@email.com",
			ParentPhone: "555-0104", Notes: "Natural goal scorer, work on tracking back",
			ParentAccessCode: "AJ9999", IsActive: true, JoinedDate: "2025-09-01",
		},
		{
			Id: "p5", FirstName: "Sofia", LastName: "Martinez", JerseyNumber: 11,
			DateOfBirth: "2016-05-30", Position: PositionForward,
			ParentName: "Carlos Martinez", ParentEmail: "carlos.m@email.com",
			ParentPhone: "555-0105", Notes: "Fastest player on the team, improving finishing",
			ParentAccessCode: "SM1111", IsActive: true, JoinedDate: "2025-09-01",
		},
		{
			Id: "p6", FirstName: "Ethan", LastName: "Brown", JerseyNumber: 5,
			DateOfBirth: "2015-09-18", Position: PositionDefender,
			ParentName: "Mike Brown", ParentEmail: "mike.brown@email.com",
			ParentPhone: "555-0106", Notes: "Great attitude, developing positioning",
			ParentAccessCode: "EB5555", IsActive: true, JoinedDate: "2025-09-01",
		},
	}
}

func seedEvents() []CalendarEvent {
	return []CalendarEvent{
		{
			Id: "e1", Type: EventTypePractice, Title: "Team Practice",
			Date: "2026-02-10", Time: "17:00", Location: "Memorial Park Field 2",
			Notes: "Focus on passing drills", IsCompleted: true,
		},
		{
			Id: "e2", Type: EventTypePractice, Title: "Team Practice",
			Date: "2026-02-13", Time: "17:00", Location: "Memorial Park Field 2",
			Notes: "Shooting practice + scrimmage", IsCompleted: true,
		},
		{
			Id: "e3", Type: EventTypeGame, Title: "vs. River City FC",
			Date: "2026-02-15", Time: "10:00", Location: "City Sports Complex",
			Opponent: "River City FC", HomeOrAway: "Away",
			Result: GameResultWin, GoalsFor: intPtr(3), GoalsAgainst: intPtr(1),
			Notes:       "Great team performance! Liam had 2 saves.",
			IsCompleted: true,
		},
		{
			Id: "e4", Type: EventTypePractice, Title: "Team Practice",
			Date: "2026-02-18", Time: "17:00", Location: "Memorial Park Field 2",
			Notes: "Dribbling + small-sided games", IsCompleted: true,
		},
		{
			Id: "e5", Type: EventTypePractice, Title: "Team Practice",
			Date: "2026-02-24", Time: "17:00", Location: "Memorial Park Field 2",
			Notes: "Defensive shape + set pieces", IsCompleted: false,
		},
		{
			Id: "e6", Type: EventTypeGame, Title: "vs. Northside United",
			Date: "2026-03-01", Time: "09:00", Location: "Home Field - Riverside Park",
			Opponent: "Northside United", HomeOrAway: "Home",
			Notes: "Season opener at home!", IsCompleted: false,
		},
		{
			Id: "e7", Type: EventTypePractice, Title: "Team Practice",
			Date: "2026-03-04", Time: "17:00", Location: "Memorial Park Field 2",
			Notes: "", IsCompleted: false,
		},
		{
			Id: "e8", Type: EventTypeGame, Title: "vs. Eagles SC",
			Date: "2026-03-08", Time: "11:00", Location: "Eagles Home Ground",
			Opponent: "Eagles SC", HomeOrAway: "Away",
			Notes: "", IsCompleted: false,
		},
	}
}

func seedRating(id, playerId, date, label string, values [8]int) SkillRating {
	assessedAt, _ := time.Parse("2006-01-02", date)
	return SkillRating{
		Id: id, PlayerId: playerId, AssessedBy: "Coach",
		AssessedAt: assessedAt, SessionLabel: label,
		Ratings: map[SkillKey]int{
			SkillBallControl: values[0], SkillDribbling: values[1],
			SkillPassing: values[2], SkillShooting: values[3],
			SkillDefending: values[4], SkillPositioning: values[5],
			SkillTeamwork: values[6], SkillEffort: values[7],
		},
	}
}

func seedRatings() []SkillRating {
	return []SkillRating{
		seedRating("r1", "p1", "2026-02-10", "Feb 10 Practice", [8]int{3, 2, 3, 2, 4, 3, 4, 5}),
		seedRating("r2", "p1", "2026-02-18", "Feb 18 Practice", [8]int{4, 2, 3, 3, 4, 4, 4, 5}),
		seedRating("r3", "p2", "2026-02-10", "Feb 10 Practice", [8]int{2, 2, 3, 2, 4, 3, 4, 4}),
		seedRating("r4", "p2", "2026-02-18", "Feb 18 Practice", [8]int{3, 3, 3, 2, 4, 4, 4, 4}),
		seedRating("r5", "p3", "2026-02-10", "Feb 10 Practice", [8]int{4, 3, 5, 2, 3, 4, 5, 5}),
		seedRating("r6", "p3", "2026-02-18", "Feb 18 Practice", [8]int{4, 4, 5, 3, 3, 5, 5, 5}),
		seedRating("r7", "p4", "2026-02-10", "Feb 10 Practice", [8]int{3, 4, 3, 4, 2, 3, 3, 5}),
		seedRating("r8", "p4", "2026-02-18", "Feb 18 Practice", [8]int{4, 4, 3, 5, 2, 4, 3, 5}),
		seedRating("r9", "p5", "2026-02-10", "Feb 10 Practice", [8]int{3, 5, 3, 3, 2, 3, 3, 5}),
		seedRating("r10", "p5", "2026-02-18", "Feb 18 Practice", [8]int{4, 5, 3, 4, 3, 3, 4, 5}),
		seedRating("r11", "p6", "2026-02-10", "Feb 10 Practice", [8]int{2, 2, 2, 2, 3, 3, 4, 5}),
		seedRating("r12", "p6", "2026-02-18", "Feb 18 Practice", [8]int{3, 3, 3, 2, 4, 3, 4, 5}),
	}
}

func seedAttendance() []AttendanceRecord {
	pastEventIds := []string{"e1", "e2", "e3", "e4"}
	playerIds := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	records := make([]AttendanceRecord, 0, len(pastEventIds)*len(playerIds))
	for ei, eventId := range pastEventIds {
		for pi, playerId := range playerIds {
			status := AttendancePresent
			if pi == 1 && ei == 1 {
				status = AttendanceAbsent
			} else if pi == 4 && ei == 3 {
				status = AttendanceExcused
			}
			records = append(records, AttendanceRecord{
				Id:       "a_" + eventId + "_" + playerId,
				EventId:  eventId,
				PlayerId: playerId,
				Status:   status,
			})
		}
	}
	return records
}

func intPtr(i int) *int {
	return &i
}
