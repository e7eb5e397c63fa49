package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/fitlog/internal/services"
	"go.uber.org/zap"
)

const deadlineLayout = "02 Jan, 2006"

var (
	errNotLoggedIn  = errors.New("log in first")
	errInvalidDiet  = errors.New("diet must be veg or nonveg")
	errUnknownInput = errors.New("unknown command, type help")
)

type usageError struct {
	usage string
}

func (err usageError) Error() string {
	return "usage: " + err.usage
}

type Services struct {
	Auth    *services.AuthService
	Goals   *services.GoalService
	Plans   *services.PlanService
	Records *services.RecordService
	Stats   *services.StatsService
	Exports *services.ExportService
}

type Options struct {
	Location *time.Location
	Logger   *zap.Logger
	Now      func() time.Time
}

// Shell is the line-oriented front end. It holds at most one session.
type Shell struct {
	services Services
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time

	input    *bufio.Reader
	terminal *os.File
	output   io.Writer
	theme    styles

	session *services.Session
}

func NewShell(deps Services, input io.Reader, output io.Writer, options Options) *Shell {
	if options.Location == nil {
		options.Location = time.UTC
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	terminal, _ := input.(*os.File)
	return &Shell{
		services: deps,
		location: options.Location,
		logger:   options.Logger,
		now:      options.Now,
		input:    bufio.NewReader(input),
		terminal: terminal,
		output:   output,
		theme:    newStyles(output),
	}
}

// Run reads commands until quit or end of input.
func (shell *Shell) Run() error {
	shell.println(shell.theme.title.Render("FITNESS TRACKER"))
	shell.println(shell.theme.muted.Render("Type help for the list of commands."))

	for {
		shell.printPrompt()
		line, err := shell.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				shell.println("")
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		quit, err := shell.dispatch(fields)
		if err != nil {
			shell.reportError(err)
		}
		if quit {
			return nil
		}
	}
}

func (shell *Shell) dispatch(fields []string) (bool, error) {
	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "help", "?":
		shell.printHelp()
	case "quit", "exit":
		shell.println("Bye.")
		return true, nil
	case "register", "signup":
		return false, shell.register(args)
	case "login":
		return false, shell.login(args)
	case "logout":
		return false, shell.logout()
	case "goal":
		return false, shell.goal(args)
	case "plan":
		return false, shell.plan(args, false)
	case "done":
		return false, shell.plan(args, true)
	case "weight":
		return false, shell.logWeight(args)
	case "report":
		return false, shell.report(args)
	case "export":
		return false, shell.export(args)
	default:
		return false, errUnknownInput
	}
	return false, nil
}

func (shell *Shell) printHelp() {
	rows := [][]string{
		{"register <user>", "create an account"},
		{"login <user>", "sign in"},
		{"logout", "sign out"},
		{"goal", "show the active goal"},
		{"goal set gain|loss <current> <target>", "start a new goal"},
		{"goal complete", "mark the active goal as done"},
		{"plan <date> veg|nonveg", "show the workout and meal plan for a day"},
		{"done <date> veg|nonveg", "log the day's plan as completed"},
		{"weight <date> <kg>", "log a weight check-in"},
		{"report weight|nutrition|workout", "show progress reports"},
		{"export <dir>", "write weight.csv, food.csv and workout.csv"},
		{"quit", "leave"},
	}
	shell.print(renderTable(shell.theme, []string{"Command", "Description"}, rows))
	shell.println(shell.theme.muted.Render("Dates are YYYY-MM-DD or today."))
}

func (shell *Shell) register(args []string) error {
	if len(args) != 1 {
		return usageError{usage: "register <user>"}
	}
	username := args[0]

	password, err := shell.readSecret("Password: ")
	if err != nil {
		return err
	}
	confirm, err := shell.readSecret("Confirm password: ")
	if err != nil {
		return err
	}
	if err := services.ValidateSignupInput(username, password, confirm); err != nil {
		return err
	}
	if err := shell.services.Auth.Register(username, password); err != nil {
		return err
	}

	shell.println(shell.theme.success.Render("Account created successfully! Please login."))
	return nil
}

func (shell *Shell) login(args []string) error {
	if len(args) != 1 {
		return usageError{usage: "login <user>"}
	}
	password, err := shell.readSecret("Password: ")
	if err != nil {
		return err
	}

	session, err := shell.services.Auth.Login(args[0], password, shell.now())
	if err != nil {
		return err
	}
	shell.session = &session
	shell.logger.Debug("shell session opened", zap.String("session", session.ID))

	shell.println(shell.theme.success.Render(fmt.Sprintf("Welcome, %s!", session.Username)))
	return shell.showGoal()
}

func (shell *Shell) logout() error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	shell.logger.Debug("shell session closed", zap.String("session", shell.session.ID))
	shell.session = nil
	shell.println("Logged out.")
	return nil
}

func (shell *Shell) goal(args []string) error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	if len(args) == 0 {
		return shell.showGoal()
	}

	switch strings.ToLower(args[0]) {
	case "set":
		if len(args) != 4 {
			return usageError{usage: "goal set gain|loss <current> <target>"}
		}
		goalType, err := services.ParseGoalType(args[1])
		if err != nil {
			return err
		}
		current, err := services.ParseWeight(args[2])
		if err != nil {
			return err
		}
		target, err := services.ParseWeight(args[3])
		if err != nil {
			return err
		}
		if _, err := shell.services.Goals.SetGoal(shell.session.Username, goalType, current, target, shell.now()); err != nil {
			return err
		}
		shell.println(shell.theme.success.Render("Goal saved."))
		return shell.showGoal()
	case "complete":
		completed, err := shell.services.Goals.CompleteGoal(shell.session.Username)
		if err != nil {
			return err
		}
		if completed == 0 {
			shell.println(shell.theme.warning.Render("No active goal to complete."))
			return nil
		}
		shell.println(shell.theme.success.Render("Congratulations! Goal completed."))
		shell.println("Set a new goal with: goal set gain|loss <current> <target>")
		return nil
	default:
		return usageError{usage: "goal [set gain|loss <current> <target> | complete]"}
	}
}

func (shell *Shell) showGoal() error {
	status, found := shell.services.Goals.Status(shell.session.Username, shell.now())
	if !found {
		shell.println(shell.theme.heading.Render("WHAT IS YOUR GOAL?"))
		shell.println("Set one with: goal set gain|loss <current> <target>")
		return nil
	}

	goal := status.Goal
	shell.println(shell.theme.heading.Render(goal.GoalType + " Progress Tracker"))
	shell.println(fmt.Sprintf("Current %s kg, target %s kg (since %s)",
		formatNumber(goal.WeightKg), formatNumber(goal.TargetWeightKg), services.FormatCalendarDay(goal.Date)))
	if status.RemainingKg <= 0 {
		shell.println(shell.theme.success.Render("Target reached. Mark it with: goal complete"))
		return nil
	}
	shell.println(shell.theme.deadline.Render("Estimated deadline: " + status.EstimatedCompletion.Format(deadlineLayout)))
	return nil
}

func (shell *Shell) plan(args []string, confirm bool) error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	if len(args) != 2 {
		if confirm {
			return usageError{usage: "done <date> veg|nonveg"}
		}
		return usageError{usage: "plan <date> veg|nonveg"}
	}

	day, err := services.ParseCalendarDay(args[0], shell.now(), shell.location)
	if err != nil {
		return err
	}
	vegetarian, err := parseDiet(args[1])
	if err != nil {
		return err
	}
	goal, found := shell.services.Goals.GetActiveGoal(shell.session.Username)
	if !found {
		return services.ErrNoActiveGoal
	}

	plan, err := shell.services.Plans.ResolvePlanForDate(day, goal.GoalType, vegetarian)
	if err != nil {
		return err
	}
	shell.printPlan(day, plan)
	if !confirm {
		return nil
	}

	result, err := shell.services.Records.ConfirmDayPlan(shell.session.Username, day, plan, vegetarian)
	if err != nil {
		return err
	}
	shell.println(shell.theme.success.Render(fmt.Sprintf("Marked as done: %d meals, %d exercises logged.", result.FoodRows, result.WorkoutRows)))
	return nil
}

func (shell *Shell) printPlan(day time.Time, plan services.DayPlan) {
	shell.println(shell.theme.heading.Render(fmt.Sprintf("Plan for %s (%s)", services.FormatCalendarDay(day), plan.Weekday)))

	mealRows := make([][]string, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		mealRows = append(mealRows, []string{meal.MealType, meal.Item, strconv.Itoa(meal.Calories), formatNumber(meal.ProteinGrams)})
	}
	shell.println("Meal Plan:")
	shell.print(renderTable(shell.theme, []string{"Meal", "Food", "Calories", "Protein (g)"}, mealRows))

	if plan.IsRestDay() {
		shell.println("Workout: Rest")
		return
	}
	exerciseRows := make([][]string, 0, len(plan.Exercises))
	for _, exercise := range plan.Exercises {
		exerciseRows = append(exerciseRows, []string{
			exercise.Name,
			strconv.Itoa(exercise.Sets),
			strconv.Itoa(exercise.Reps),
			strconv.Itoa(exercise.DurationMinutes),
		})
	}
	shell.println("Workout: " + plan.MuscleGroup)
	shell.print(renderTable(shell.theme, []string{"Exercise", "Sets", "Reps", "Duration (min)"}, exerciseRows))
}

func (shell *Shell) logWeight(args []string) error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	if len(args) != 2 {
		return usageError{usage: "weight <date> <kg>"}
	}

	day, err := services.ParseCalendarDay(args[0], shell.now(), shell.location)
	if err != nil {
		return err
	}
	weight, err := services.ParseWeight(args[1])
	if err != nil {
		return err
	}
	if _, err := shell.services.Goals.LogWeight(shell.session.Username, day, weight); err != nil {
		return err
	}

	shell.println(shell.theme.success.Render(fmt.Sprintf("Logged %s kg on %s.", formatNumber(weight), services.FormatCalendarDay(day))))
	return nil
}

func (shell *Shell) report(args []string) error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return usageError{usage: "report weight|nutrition|workout"}
	}

	username := shell.session.Username
	switch strings.ToLower(args[0]) {
	case "weight":
		progress := shell.services.Stats.WeightProgress(username)
		if !progress.HasData() {
			shell.println(shell.theme.muted.Render("No weight data available"))
			return nil
		}
		rows := make([][]string, 0, len(progress.Points))
		for _, point := range progress.Points {
			rows = append(rows, []string{services.FormatCalendarDay(point.Date), formatNumber(point.WeightKg)})
		}
		shell.println(shell.theme.heading.Render("Weight Progress"))
		shell.print(renderTable(shell.theme, []string{"Date", "Weight (kg)"}, rows))
		shell.println(shell.theme.failure.Render("Goal Weight: " + formatNumber(progress.GoalKg) + " kg"))
	case "nutrition":
		points := shell.services.Stats.DailyNutrition(username)
		if len(points) == 0 {
			shell.println(shell.theme.muted.Render("No nutrition data available"))
			return nil
		}
		rows := make([][]string, 0, len(points))
		for _, point := range points {
			rows = append(rows, []string{services.FormatCalendarDay(point.Date), strconv.Itoa(point.Calories), formatNumber(point.ProteinGrams)})
		}
		shell.println(shell.theme.heading.Render("Daily Calorie and Protein Intake"))
		shell.print(renderTable(shell.theme, []string{"Date", "Calories", "Protein (g)"}, rows))
	case "workout", "workouts":
		counts := shell.services.Stats.WorkoutFrequency(username)
		if len(counts) == 0 {
			shell.println(shell.theme.muted.Render("No workout data available"))
			return nil
		}
		rows := make([][]string, 0, len(counts))
		for _, count := range counts {
			rows = append(rows, []string{services.FormatCalendarDay(count.Date), count.MuscleGroup, strconv.Itoa(count.Exercises)})
		}
		shell.println(shell.theme.heading.Render("Workout Frequency by Muscle Group"))
		shell.print(renderTable(shell.theme, []string{"Date", "Muscle Group", "Exercises"}, rows))
	default:
		return usageError{usage: "report weight|nutrition|workout"}
	}
	return nil
}

func (shell *Shell) export(args []string) error {
	if shell.session == nil {
		return errNotLoggedIn
	}
	if len(args) != 1 {
		return usageError{usage: "export <dir>"}
	}

	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	for _, collection := range services.ExportCollections {
		path := filepath.Join(dir, services.ExportFileName(collection))
		rows, err := shell.writeExport(path, collection)
		if err != nil {
			return fmt.Errorf("export %s: %w", collection, err)
		}
		shell.println(fmt.Sprintf("Wrote %s (%d rows)", path, rows))
	}
	return nil
}

func (shell *Shell) writeExport(path string, collection string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	rows, err := shell.services.Exports.WriteCSV(file, shell.session.Username, collection)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return rows, err
}

func (shell *Shell) reportError(err error) {
	message := err.Error()
	switch {
	case services.IsPersistenceError(err):
		message = "Failed to save data: " + err.Error()
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		message = "Invalid username or password"
	case errors.Is(err, services.ErrCredentialsRequired):
		message = "Username and password required"
	case errors.Is(err, services.ErrInvalidWeight):
		message = "Please enter valid numbers"
	}
	if !services.IsValidationError(err) {
		shell.logger.Debug("shell command failed", zap.Error(err))
	}
	shell.println(shell.theme.failure.Render(message))
}

func (shell *Shell) readLine() (string, error) {
	line, err := shell.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readSecret reads one line with echo off when input is a terminal.
func (shell *Shell) readSecret(prompt string) (string, error) {
	shell.print(prompt)
	if shell.terminal != nil {
		if restore, err := suppressEcho(shell.terminal); err == nil {
			defer func() {
				restore()
				shell.println("")
			}()
		}
	}

	line, err := shell.readLine()
	if errors.Is(err, io.EOF) {
		return "", io.ErrUnexpectedEOF
	}
	return line, err
}

func (shell *Shell) printPrompt() {
	if shell.session == nil {
		shell.print(shell.theme.title.Render("fitlog") + "> ")
		return
	}
	shell.print(shell.theme.title.Render(shell.session.Username) + "> ")
}

func (shell *Shell) print(text string) {
	_, _ = io.WriteString(shell.output, text)
}

func (shell *Shell) println(text string) {
	_, _ = io.WriteString(shell.output, text+"\n")
}

func parseDiet(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "veg", "vegetarian":
		return true, nil
	case "nonveg", "non-veg", "non-vegetarian":
		return false, nil
	default:
		return false, errInvalidDiet
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
