// Package persistence models the corpus and report documents this module
// optionally stores, following the teacher's bson-tagged struct pattern
// for MongoDB persistence rather than hand-rolling a serialization layer.
package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nicoberrocal/bvcalc/bv"
)

// UnitResultDoc is one corpus unit's classified outcome, persisted the way
// the teacher persists per-entity battle outcomes.
type UnitResultDoc struct {
	ID             bson.ObjectID     `bson:"_id,omitempty"`
	ReportID       bson.ObjectID     `bson:"reportId"`
	UnitID         string            `bson:"unitId"`
	FinalBV        int               `bson:"finalBv"`
	ReferenceBV    int               `bson:"referenceBv,omitempty"`
	DeltaPercent   float64           `bson:"deltaPercent,omitempty"`
	Classification bv.Classification `bson:"classification,omitempty"`
	Error          string            `bson:"error,omitempty"`
}

// ReportDoc is a batch validation run's summary record.
type ReportDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	RunAt     time.Time     `bson:"runAt"`
	TotalUnits int          `bson:"totalUnits"`
	Counts    map[string]int `bson:"counts"`
}

// ReportStore persists validation runs to a Mongo-shaped collection pair,
// mirroring the teacher's collection-per-entity layering.
type ReportStore struct {
	Reports *mongo.Collection
	Units   *mongo.Collection
}

// NewReportStore binds a ReportStore to the "bvReports" and "bvUnitResults"
// collections of the given database.
func NewReportStore(db *mongo.Database) *ReportStore {
	return &ReportStore{
		Reports: db.Collection("bvReports"),
		Units:   db.Collection("bvUnitResults"),
	}
}

// Save inserts a report document and its per-unit result documents,
// returning the generated report id.
func (s *ReportStore) Save(ctx context.Context, report ReportDoc, units []UnitResultDoc) (bson.ObjectID, error) {
	report.ID = bson.NewObjectID()
	if report.RunAt.IsZero() {
		report.RunAt = time.Now()
	}
	if _, err := s.Reports.InsertOne(ctx, report); err != nil {
		return bson.ObjectID{}, err
	}

	if len(units) == 0 {
		return report.ID, nil
	}
	docs := make([]interface{}, len(units))
	for i := range units {
		units[i].ReportID = report.ID
		docs[i] = units[i]
	}
	_, err := s.Units.InsertMany(ctx, docs)
	return report.ID, err
}
