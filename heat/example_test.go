// SPDX-License-Identifier: MIT

package heat_test

import (
	"fmt"

	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/heat"
)

func ExampleAggregator_Aggregate() {
	cfg := config.DefaultConfig()
	cfg.Rows, cfg.Cols = 2, 3
	cfg.ColumnLabels = []string{"Seq No.", "Owner", "Notes"}
	cfg.CriticalColumns = []string{"Owner"}

	m, rep, _ := heat.NewAggregator(cfg, nil).Aggregate([]heat.ChangeRecord{
		{Table: 0, ColumnName: "Notes", Count: 12},
		{Table: 1, ColumnName: "Owner", Count: 2},
		{Table: 7, Column: heat.Col(0), Count: 1},
	})
	fmt.Print(m)
	fmt.Println("accepted:", rep.Accepted, "dropped:", len(rep.Dropped))
	// Output:
	// [0.05, 0.05, 0.65]
	// [0.05, 0.55, 0.05]
	// accepted: 2 dropped: 1
}
