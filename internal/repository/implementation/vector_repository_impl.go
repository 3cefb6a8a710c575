package implementation

import (
	"context"

	"github.com/qdrant/go-client/qdrant"

	"yoloeats-be/internal/constant"
	"yoloeats-be/internal/model"
	"yoloeats-be/internal/repository/contract"
)

type VectorRepositoryImpl struct {
	client     *qdrant.Client
	collection string
}

func NewVectorRepository(client *qdrant.Client, collection string) contract.VectorRepository {
	return &VectorRepositoryImpl{
		client:     client,
		collection: collection,
	}
}

func (r *VectorRepositoryImpl) GetPointVector(ctx context.Context, pointID string) ([]float32, bool, error) {
	points, err := r.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: r.collection,
		Ids:            []*qdrant.PointId{qdrant.NewID(pointID)},
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(points) == 0 {
		return nil, false, nil
	}

	vector := points[0].GetVectors().GetVector()
	if vector == nil {
		return nil, true, nil
	}
	return vector.GetData(), true, nil
}

func (r *VectorRepositoryImpl) SearchSimilar(ctx context.Context, vector []float32, excludePointIDs []string, excludeTags []string, limit uint64) ([]*model.VectorCandidate, error) {
	mustNot := make([]*qdrant.Condition, 0, 2)

	if len(excludePointIDs) > 0 {
		ids := make([]*qdrant.PointId, 0, len(excludePointIDs))
		for _, id := range excludePointIDs {
			ids = append(ids, qdrant.NewID(id))
		}
		mustNot = append(mustNot, qdrant.NewHasID(ids...))
	}
	if len(excludeTags) > 0 {
		mustNot = append(mustNot, qdrant.NewMatchKeywords(constant.VectorPayloadTagsKey, excludeTags...))
	}

	scored, err := r.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: r.collection,
		Query:          qdrant.NewQuery(vector...),
		Filter:         &qdrant.Filter{MustNot: mustNot},
		Limit:          qdrant.PtrOf(limit),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]*model.VectorCandidate, 0, len(scored))
	for _, point := range scored {
		candidate := &model.VectorCandidate{
			PointId:    point.GetId().GetUuid(),
			Score:      point.GetScore(),
			LabelsTags: payloadStringList(point.GetPayload(), constant.VectorPayloadTagsKey),
		}
		if code := point.GetPayload()[constant.VectorPayloadCodeKey].GetStringValue(); code != "" {
			candidate.Code = &code
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

func (r *VectorRepositoryImpl) UpsertPoint(ctx context.Context, pointID string, vector []float32, code string, labelsTags []string) error {
	_, err := r.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: r.collection,
		Points: []*qdrant.PointStruct{{
			Id:      qdrant.NewID(pointID),
			Vectors: qdrant.NewVectors(vector...),
			Payload: pointPayload(code, labelsTags),
		}},
	})
	return err
}

func (r *VectorRepositoryImpl) SetPointPayload(ctx context.Context, pointID string, code string, labelsTags []string) error {
	_, err := r.client.SetPayload(ctx, &qdrant.SetPayloadPoints{
		CollectionName: r.collection,
		Payload:        pointPayload(code, labelsTags),
		PointsSelector: qdrant.NewPointsSelector(qdrant.NewID(pointID)),
	})
	return err
}

func (r *VectorRepositoryImpl) DeletePoints(ctx context.Context, pointIDs []string) error {
	if len(pointIDs) == 0 {
		return nil
	}

	ids := make([]*qdrant.PointId, 0, len(pointIDs))
	for _, id := range pointIDs {
		ids = append(ids, qdrant.NewID(id))
	}

	_, err := r.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: r.collection,
		Points:         qdrant.NewPointsSelector(ids...),
	})
	return err
}

func pointPayload(code string, labelsTags []string) map[string]*qdrant.Value {
	tags := make([]any, 0, len(labelsTags))
	for _, tag := range labelsTags {
		tags = append(tags, tag)
	}
	return qdrant.NewValueMap(map[string]any{
		constant.VectorPayloadCodeKey: code,
		constant.VectorPayloadTagsKey: tags,
	})
}

func payloadStringList(payload map[string]*qdrant.Value, key string) []string {
	list := payload[key].GetListValue()
	if list == nil {
		return nil
	}

	values := make([]string, 0, len(list.GetValues()))
	for _, item := range list.GetValues() {
		if s := item.GetStringValue(); s != "" {
			values = append(values, s)
		}
	}
	return values
}
