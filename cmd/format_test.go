// ABOUTME: Tests for the human-readable output formatters

package cmd

import (
	"strings"
	"testing"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

func TestFormatTeamLine(t *testing.T) {
	team := &client.Team{ID: 5, Name: "Rocket", HackathonName: "HackWeek", MemberCount: 3, OpenPositions: 2}
	got := formatTeamLine(team)
	want := "5    Rocket @ HackWeek  (3 members, 2 open)"
	if got != want {
		t.Errorf("formatTeamLine() = %q, want %q", got, want)
	}

	minimal := &client.Team{ID: 9, Name: "Solo", MemberCount: 1}
	if got := formatTeamLine(minimal); got != "9    Solo  (1 members)" {
		t.Errorf("formatTeamLine() = %q", got)
	}
}

func TestFormatUserLine(t *testing.T) {
	u := &client.User{ID: 12, Username: "ada", FullName: "Ada Lovelace", Skills: []string{"go", "react"}, Availability: "looking"}
	got := formatUserLine(u)
	if !strings.Contains(got, "Ada Lovelace") || !strings.Contains(got, "[go, react]") || !strings.Contains(got, "(looking)") {
		t.Errorf("formatUserLine() = %q", got)
	}

	bare := &client.User{ID: 3, Username: "bob"}
	got = formatUserLine(bare)
	if strings.Contains(got, "[") || strings.Contains(got, "(") {
		t.Errorf("expected no skill or availability markers, got %q", got)
	}
}

func TestFormatHackathonLine(t *testing.T) {
	ev := &client.Hackathon{ID: 2, Name: "Climate Hack", StartDate: "2026-10-01", Mode: "remote", Status: "upcoming"}
	got := formatHackathonLine(ev)
	want := "2    Climate Hack  2026-10-01  (remote)  [upcoming]"
	if got != want {
		t.Errorf("formatHackathonLine() = %q, want %q", got, want)
	}
}

func TestFormatBoardHuman(t *testing.T) {
	tasks := []client.Task{
		{ID: 1, Title: "Design schema", Status: client.TaskStatusTodo, Priority: "high"},
		{ID: 2, Title: "Wire login", Status: client.TaskStatusInProgress, AssignedToName: "Ada"},
	}
	got := formatBoardHuman(tasks)

	for _, want := range []string{"To Do:", "In Progress:", "Done:", "Design schema", "(high)", "-> Ada"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	// The done column is empty
	if !strings.Contains(got, "(none)") {
		t.Errorf("expected (none) for the empty column:\n%s", got)
	}
}
