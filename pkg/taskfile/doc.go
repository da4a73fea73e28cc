// Package taskfile builds tasks from declarative YAML definitions.
//
// A file lists tasks with their content type, typed parameters and plan:
//
//	tasks:
//	  - type: 10001
//	    priority: 50
//	    start_after: 10s
//	    params:
//	      - {name: userId, kind: long, value: 42}
//	    schedule:
//	      max: 3
//	      interval: 1m
//	      deadline_after: 1h
//	    retry:
//	      max: 2
//	      interval: 5s
//
// Parameter kinds are string, int, long, bool and double. Durations use Go
// syntax. Plans are built with task.PlanBuilder, so the same validation rules
// apply: priorities outside [-128, 127] and repeat maxima below 2 are rejected.
package taskfile
