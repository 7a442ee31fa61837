package postgres

import (
	"fmt"
	"strings"

	"github.com/oksasatya/go-job-board/internal/domain/jobfilter"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern matching it literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// jobWhere renders p as a WHERE clause over the jobs table aliased "j".
// Placeholders start at $startArg. An empty predicate yields "".
func jobWhere(p jobfilter.Predicate, startArg int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", startArg+len(args)-1)
	}

	if p.EmploymentType != "" {
		conds = append(conds, "j.employment_type = "+next(p.EmploymentType))
	}
	if p.JobType != "" {
		conds = append(conds, "j.job_type = "+next(p.JobType))
	}
	if p.MinSalary != nil {
		conds = append(conds, "j.salary >= "+next(*p.MinSalary))
	}
	if p.MaxSalary != nil {
		conds = append(conds, "j.salary <= "+next(*p.MaxSalary))
	}
	if p.Text != "" {
		ph := next(containsPattern(p.Text))
		conds = append(conds, fmt.Sprintf(`(j.title ILIKE %s ESCAPE '\' OR j.description ILIKE %s ESCAPE '\')`, ph, ph))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
