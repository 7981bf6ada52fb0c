package dailyreports

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repo struct {
	coll *storage.Collection[Report]
}

func NewRepo(store *storage.Store) *Repo {
	return &Repo{
		coll: storage.NewCollection[Report](store, "daily_reports", "report"),
	}
}

func (r *Repo) GetAll(ctx context.Context) []Report {
	return r.coll.All(ctx)
}

func (r *Repo) GetByProjectID(ctx context.Context, projectID string) []Report {
	return r.coll.Filter(ctx, func(rep Report) bool {
		return rep.ProjectID == projectID
	})
}

func (r *Repo) Create(ctx context.Context, in CreateInput) Report {
	rep := Report{
		ID:               r.coll.NewID(),
		ProjectID:        in.ProjectID,
		ReportDate:       in.ReportDate,
		SiteEngineer:     in.SiteEngineer,
		WorkDescription:  in.WorkDescription,
		QuantityExecuted: in.QuantityExecuted,
		Unit:             in.Unit,
		BOQItemID:        in.BOQItemID,
		Weather:          in.Weather,
		NoOfWorkers:      in.NoOfWorkers,
		Remarks:          in.Remarks,
		Photos:           in.Photos,
		CreatedAt:        time.Now().UTC(),
	}
	r.coll.Append(ctx, rep)
	return rep
}
