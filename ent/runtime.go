// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tanmay/wordtrail/ent/answerevent"
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
	"github.com/tanmay/wordtrail/ent/lessonevent"
	"github.com/tanmay/wordtrail/ent/progress"
	"github.com/tanmay/wordtrail/ent/schema"
	"github.com/tanmay/wordtrail/ent/syncevent"
	"github.com/tanmay/wordtrail/ent/viewevent"
	"github.com/tanmay/wordtrail/ent/wordstat"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescWordID is the schema descriptor for word_id field.
	answereventDescWordID := answereventFields[0].Descriptor()
	// answerevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	answerevent.WordIDValidator = answereventDescWordID.Validators[0].(func(string) error)
	// answereventDescStatusAfter is the schema descriptor for status_after field.
	answereventDescStatusAfter := answereventFields[2].Descriptor()
	// answerevent.StatusAfterValidator is a validator for the "status_after" field. It is called by the builders before save.
	answerevent.StatusAfterValidator = answereventDescStatusAfter.Validators[0].(func(string) error)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescCategoryID is the schema descriptor for category_id field.
	categoryDescCategoryID := categoryFields[0].Descriptor()
	// category.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	category.CategoryIDValidator = categoryDescCategoryID.Validators[0].(func(string) error)
	// categoryDescTitle is the schema descriptor for title field.
	categoryDescTitle := categoryFields[1].Descriptor()
	// category.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	category.TitleValidator = categoryDescTitle.Validators[0].(func(string) error)
	// categoryDescIcon is the schema descriptor for icon field.
	categoryDescIcon := categoryFields[2].Descriptor()
	// category.DefaultIcon holds the default value on creation for the icon field.
	category.DefaultIcon = categoryDescIcon.Default.(string)
	// categoryDescColor is the schema descriptor for color field.
	categoryDescColor := categoryFields[3].Descriptor()
	// category.DefaultColor holds the default value on creation for the color field.
	category.DefaultColor = categoryDescColor.Default.(string)
	// categoryDescPosition is the schema descriptor for position field.
	categoryDescPosition := categoryFields[4].Descriptor()
	// category.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	category.PositionValidator = categoryDescPosition.Validators[0].(func(int) error)
	// categoryDescProgress is the schema descriptor for progress field.
	categoryDescProgress := categoryFields[5].Descriptor()
	// category.DefaultProgress holds the default value on creation for the progress field.
	category.DefaultProgress = categoryDescProgress.Default.(int)
	// category.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	category.ProgressValidator = func() func(int) error {
		validators := categoryDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescLessonID is the schema descriptor for lesson_id field.
	lessonDescLessonID := lessonFields[0].Descriptor()
	// lesson.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lesson.LessonIDValidator = lessonDescLessonID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[1].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescPosition is the schema descriptor for position field.
	lessonDescPosition := lessonFields[2].Descriptor()
	// lesson.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	lesson.PositionValidator = lessonDescPosition.Validators[0].(func(int) error)
	// lessonDescCompleted is the schema descriptor for completed field.
	lessonDescCompleted := lessonFields[3].Descriptor()
	// lesson.DefaultCompleted holds the default value on creation for the completed field.
	lesson.DefaultCompleted = lessonDescCompleted.Default.(bool)
	// lessonDescLocked is the schema descriptor for locked field.
	lessonDescLocked := lessonFields[4].Descriptor()
	// lesson.DefaultLocked holds the default value on creation for the locked field.
	lesson.DefaultLocked = lessonDescLocked.Default.(bool)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescCategoryID is the schema descriptor for category_id field.
	lessoneventDescCategoryID := lessoneventFields[0].Descriptor()
	// lessonevent.CategoryIDValidator is a validator for the "category_id" field. It is called by the builders before save.
	lessonevent.CategoryIDValidator = lessoneventDescCategoryID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescIdempotencyKey is the schema descriptor for idempotency_key field.
	lessoneventDescIdempotencyKey := lessoneventFields[4].Descriptor()
	// lessonevent.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	lessonevent.IdempotencyKeyValidator = lessoneventDescIdempotencyKey.Validators[0].(func(string) error)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescTotalLessonsCompleted is the schema descriptor for total_lessons_completed field.
	progressDescTotalLessonsCompleted := progressFields[0].Descriptor()
	// progress.DefaultTotalLessonsCompleted holds the default value on creation for the total_lessons_completed field.
	progress.DefaultTotalLessonsCompleted = progressDescTotalLessonsCompleted.Default.(int)
	// progress.TotalLessonsCompletedValidator is a validator for the "total_lessons_completed" field. It is called by the builders before save.
	progress.TotalLessonsCompletedValidator = progressDescTotalLessonsCompleted.Validators[0].(func(int) error)
	// progressDescTotalPoints is the schema descriptor for total_points field.
	progressDescTotalPoints := progressFields[1].Descriptor()
	// progress.DefaultTotalPoints holds the default value on creation for the total_points field.
	progress.DefaultTotalPoints = progressDescTotalPoints.Default.(int)
	// progress.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	progress.TotalPointsValidator = progressDescTotalPoints.Validators[0].(func(int) error)
	// progressDescStreak is the schema descriptor for streak field.
	progressDescStreak := progressFields[2].Descriptor()
	// progress.DefaultStreak holds the default value on creation for the streak field.
	progress.DefaultStreak = progressDescStreak.Default.(int)
	// progress.StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	progress.StreakValidator = progressDescStreak.Validators[0].(func(int) error)
	// progressDescLastStudyDate is the schema descriptor for last_study_date field.
	progressDescLastStudyDate := progressFields[3].Descriptor()
	// progress.DefaultLastStudyDate holds the default value on creation for the last_study_date field.
	progress.DefaultLastStudyDate = progressDescLastStudyDate.Default.(string)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescDirection is the schema descriptor for direction field.
	synceventDescDirection := synceventFields[0].Descriptor()
	// syncevent.DirectionValidator is a validator for the "direction" field. It is called by the builders before save.
	syncevent.DirectionValidator = synceventDescDirection.Validators[0].(func(string) error)
	// synceventDescEndpoint is the schema descriptor for endpoint field.
	synceventDescEndpoint := synceventFields[1].Descriptor()
	// syncevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	syncevent.EndpointValidator = synceventDescEndpoint.Validators[0].(func(string) error)
	// synceventDescErrorMessage is the schema descriptor for error_message field.
	synceventDescErrorMessage := synceventFields[3].Descriptor()
	// syncevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	syncevent.DefaultErrorMessage = synceventDescErrorMessage.Default.(string)
	vieweventMixin := schema.ViewEvent{}.Mixin()
	vieweventMixinFields0 := vieweventMixin[0].Fields()
	_ = vieweventMixinFields0
	vieweventFields := schema.ViewEvent{}.Fields()
	_ = vieweventFields
	// vieweventDescTimestamp is the schema descriptor for timestamp field.
	vieweventDescTimestamp := vieweventMixinFields0[1].Descriptor()
	// viewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	viewevent.DefaultTimestamp = vieweventDescTimestamp.Default.(func() time.Time)
	// vieweventDescWordID is the schema descriptor for word_id field.
	vieweventDescWordID := vieweventFields[0].Descriptor()
	// viewevent.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	viewevent.WordIDValidator = vieweventDescWordID.Validators[0].(func(string) error)
	wordstatFields := schema.WordStat{}.Fields()
	_ = wordstatFields
	// wordstatDescWordID is the schema descriptor for word_id field.
	wordstatDescWordID := wordstatFields[0].Descriptor()
	// wordstat.WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	wordstat.WordIDValidator = wordstatDescWordID.Validators[0].(func(string) error)
	// wordstatDescStatus is the schema descriptor for status field.
	wordstatDescStatus := wordstatFields[1].Descriptor()
	// wordstat.DefaultStatus holds the default value on creation for the status field.
	wordstat.DefaultStatus = wordstatDescStatus.Default.(string)
	// wordstatDescViewCount is the schema descriptor for view_count field.
	wordstatDescViewCount := wordstatFields[2].Descriptor()
	// wordstat.DefaultViewCount holds the default value on creation for the view_count field.
	wordstat.DefaultViewCount = wordstatDescViewCount.Default.(int)
	// wordstat.ViewCountValidator is a validator for the "view_count" field. It is called by the builders before save.
	wordstat.ViewCountValidator = wordstatDescViewCount.Validators[0].(func(int) error)
	// wordstatDescCorrectCount is the schema descriptor for correct_count field.
	wordstatDescCorrectCount := wordstatFields[3].Descriptor()
	// wordstat.DefaultCorrectCount holds the default value on creation for the correct_count field.
	wordstat.DefaultCorrectCount = wordstatDescCorrectCount.Default.(int)
	// wordstat.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	wordstat.CorrectCountValidator = wordstatDescCorrectCount.Validators[0].(func(int) error)
	// wordstatDescIncorrectCount is the schema descriptor for incorrect_count field.
	wordstatDescIncorrectCount := wordstatFields[4].Descriptor()
	// wordstat.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	wordstat.DefaultIncorrectCount = wordstatDescIncorrectCount.Default.(int)
	// wordstat.IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	wordstat.IncorrectCountValidator = wordstatDescIncorrectCount.Validators[0].(func(int) error)
}
