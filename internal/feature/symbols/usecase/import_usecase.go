package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"symbol_catalog/internal/shared/result"
)

// SymbolCreator は1件の銘柄登録を行います。SymbolUsecase が実装します。
type SymbolCreator interface {
	CreateSymbol(ctx context.Context, dto CreateSymbolDto) result.Result[SymbolDto]
}

// ImportReport は一括登録の集計結果です。
type ImportReport struct {
	Created    int
	Duplicates int
	Invalid    int
	Failed     int
}

// Total は処理した行数を返します。
func (r ImportReport) Total() int {
	return r.Created + r.Duplicates + r.Invalid + r.Failed
}

// ImportUsecase は銘柄の一覧を SymbolCreator 経由で一括登録します。
// 登録ルール（重複チェックなど）は SymbolCreator 側に委ねます。
type ImportUsecase struct {
	creator  SymbolCreator
	validate *validator.Validate
	log      *zap.Logger
}

// NewImportUsecase は新しい ImportUsecase を作成します。
func NewImportUsecase(creator SymbolCreator, log *zap.Logger) *ImportUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportUsecase{
		creator:  creator,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// ImportAll は rows を順番に登録します。
// 1行で失敗しても処理を止めずにログに出力し、次の行へ進みます。
// ctx がキャンセルされた場合はそこまでの集計と ctx.Err() を返します。
func (iu *ImportUsecase) ImportAll(ctx context.Context, rows []CreateSymbolDto) (ImportReport, error) {
	var report ImportReport
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := iu.validate.Struct(row); err != nil {
			iu.log.Warn("invalid import row skipped", zap.Int("row", i+1), zap.String("ticker", row.Ticker), zap.Error(err))
			report.Invalid++
			continue
		}

		res := iu.creator.CreateSymbol(ctx, row)
		switch {
		case res.IsSuccess():
			report.Created++
		case res.Error().Code == codeDuplicateTicker:
			report.Duplicates++
		default:
			iu.log.Error("import row failed", zap.Int("row", i+1), zap.String("ticker", row.Ticker),
				zap.String("code", res.Error().Code), zap.String("message", res.Error().Message))
			report.Failed++
		}
	}
	return report, nil
}
