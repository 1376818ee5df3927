package planner

import (
	"fmt"

	"github.com/mansoorceksport/fitpro/internal/domain"
)

// Predefined plan ids
const (
	PlanUpperLower      = "upperLower"
	PlanPushPullLegs    = "pushPullLegs"
	PlanUpperLower4Days = "upperLower4Days"
	PlanFiveDaySplit    = "fiveDaySplit"
	PlanSixDaySplit     = "sixDaySplit"
)

var planIDByAvailability = map[int]string{
	2: PlanUpperLower,
	3: PlanPushPullLegs,
	4: PlanUpperLower4Days,
	5: PlanFiveDaySplit,
	6: PlanSixDaySplit,
}

// TrainingPlanIDFor maps weekly availability to the id of its predefined plan
func TrainingPlanIDFor(daysPerWeek int) (string, error) {
	id, ok := planIDByAvailability[daysPerWeek]
	if !ok {
		return "", fmt.Errorf("%w: %d", domain.ErrUnsupportedAvailability, daysPerWeek)
	}
	return id, nil
}

func ex(name string, sets, reps int) domain.PlanExercise {
	return domain.PlanExercise{Name: name, Sets: sets, Reps: reps}
}

// TrainingPlans returns a fresh copy of the predefined plan catalog
func TrainingPlans() []domain.TrainingPlan {
	return []domain.TrainingPlan{
		{
			ID:          PlanUpperLower,
			Name:        "Upper/Lower (2 dias/semana)",
			Description: "Foco em grupos musculares superiores e inferiores.",
			DaysPerWeek: 2,
			Days: []domain.TrainingPlanDay{
				{ID: "upper1", Name: "Dia de Superior A", Exercises: []domain.PlanExercise{
					ex("Supino com Barra", 3, 8),
					ex("Remada Curvada", 3, 8),
					ex("Desenvolvimento Halteres", 3, 10),
					ex("Rosca Direta", 3, 12),
					ex("Tríceps Testa", 3, 12),
				}},
				{ID: "lower1", Name: "Dia de Inferior A", Exercises: []domain.PlanExercise{
					ex("Agachamento com Barra", 3, 8),
					ex("Levantamento Terra Romeno", 3, 8),
					ex("Leg Press", 3, 10),
					ex("Extensão de Pernas", 3, 12),
					ex("Flexão de Pernas", 3, 12),
				}},
			},
		},
		{
			ID:          PlanPushPullLegs,
			Name:        "Push Pull Legs (3 dias/semana)",
			Description: "Um split clássico para crescimento muscular e força.",
			DaysPerWeek: 3,
			Days: []domain.TrainingPlanDay{
				{ID: "push", Name: "Dia de Empurrar (Push)", Exercises: []domain.PlanExercise{
					ex("Supino com Barra", 3, 8),
					ex("Supino Inclinado com Halteres", 3, 10),
					ex("Desenvolvimento Militar", 3, 8),
					ex("Elevação Lateral", 3, 12),
					ex("Tríceps Pulley", 3, 10),
				}},
				{ID: "pull", Name: "Dia de Puxar (Pull)", Exercises: []domain.PlanExercise{
					ex("Barra Fixa", 3, 8),
					ex("Remada Curvada com Barra", 3, 8),
					ex("Puxada Alta", 3, 10),
					ex("Remada Alta", 3, 15),
					ex("Rosca Direta", 3, 10),
				}},
				{ID: "legs", Name: "Dia de Pernas (Legs)", Exercises: []domain.PlanExercise{
					ex("Agachamento com Barra", 3, 8),
					ex("Stiff com Barra", 3, 8),
					ex("Leg Press", 3, 10),
					ex("Extensão de Pernas", 3, 12),
					ex("Flexão de Pernas", 3, 12),
				}},
			},
		},
		{
			ID:          PlanUpperLower4Days,
			Name:        "Upper/Lower (4 dias/semana)",
			Description: "Split de 4 dias com foco em superior e inferior.",
			DaysPerWeek: 4,
			Days: []domain.TrainingPlanDay{
				{ID: "upperA", Name: "Dia de Superior A", Exercises: []domain.PlanExercise{
					ex("Supino Reto", 4, 6),
					ex("Remada Curvada", 4, 6),
					ex("Desenvolvimento Barra", 3, 8),
					ex("Rosca Martelo", 3, 10),
					ex("Extensão Tríceps", 3, 10),
				}},
				{ID: "lowerA", Name: "Dia de Inferior A", Exercises: []domain.PlanExercise{
					ex("Agachamento Frontal", 4, 6),
					ex("Levantamento Terra", 3, 5),
					ex("Cadeira Extensora", 3, 12),
					ex("Mesa Flexora", 3, 12),
					ex("Panturrilha em Pé", 4, 15),
				}},
				{ID: "upperB", Name: "Dia de Superior B", Exercises: []domain.PlanExercise{
					ex("Supino Inclinado", 4, 8),
					ex("Remada Unilateral", 4, 8),
					ex("Elevação Lateral", 3, 12),
					ex("Rosca Concentrada", 3, 10),
					ex("Paralelas", 3, 10),
				}},
				{ID: "lowerB", Name: "Dia de Inferior B", Exercises: []domain.PlanExercise{
					ex("Leg Press", 4, 10),
					ex("Stiff", 3, 8),
					ex("Afundo", 3, 10),
					ex("Glúteo Máquina", 3, 12),
					ex("Panturrilha Sentado", 4, 15),
				}},
			},
		},
		{
			ID:          PlanFiveDaySplit,
			Name:        "Split de 5 dias (5 dias/semana)",
			Description: "Foco em grupos musculares específicos por dia.",
			DaysPerWeek: 5,
			Days: []domain.TrainingPlanDay{
				{ID: "chestTriceps", Name: "Peito e Tríceps", Exercises: []domain.PlanExercise{
					ex("Supino Reto", 4, 8),
					ex("Supino Inclinado Halteres", 3, 10),
					ex("Crucifixo Máquina", 3, 12),
					ex("Tríceps Pulley", 4, 10),
					ex("Tríceps Francês", 3, 12),
				}},
				{ID: "backBiceps", Name: "Costas e Bíceps", Exercises: []domain.PlanExercise{
					ex("Barra Fixa", 4, 8),
					ex("Remada Curvada", 4, 8),
					ex("Puxada Alta", 3, 10),
					ex("Rosca Direta", 4, 10),
					ex("Rosca Alternada", 3, 12),
				}},
				{ID: "legsShoulders", Name: "Pernas e Ombros", Exercises: []domain.PlanExercise{
					ex("Agachamento Livre", 4, 8),
					ex("Leg Press", 3, 10),
					ex("Stiff", 3, 10),
					ex("Desenvolvimento Militar", 4, 8),
					ex("Elevação Lateral", 3, 12),
				}},
				{ID: "upperBodyLight", Name: "Superior Leve", Exercises: []domain.PlanExercise{
					ex("Supino Máquina", 3, 12),
					ex("Remada Baixa", 3, 12),
					ex("Elevação Frontal", 3, 15),
					ex("Tríceps Corda", 3, 15),
					ex("Rosca Scott", 3, 15),
				}},
				{ID: "lowerBodyLight", Name: "Inferior Leve", Exercises: []domain.PlanExercise{
					ex("Cadeira Adutora", 3, 15),
					ex("Cadeira Abdutora", 3, 15),
					ex("Panturrilha Sentado", 3, 20),
					ex("Extensão de Pernas", 3, 15),
					ex("Flexão de Pernas", 3, 15),
				}},
			},
		},
		{
			ID:          PlanSixDaySplit,
			Name:        "Split de 6 dias (6 dias/semana)",
			Description: "Alta frequência para maximizar o crescimento.",
			DaysPerWeek: 6,
			Days: []domain.TrainingPlanDay{
				{ID: "push1", Name: "Push Day 1", Exercises: []domain.PlanExercise{
					ex("Supino Reto", 3, 8),
					ex("Desenvolvimento Halteres", 3, 10),
					ex("Tríceps Pulley", 3, 12),
				}},
				{ID: "pull1", Name: "Pull Day 1", Exercises: []domain.PlanExercise{
					ex("Remada Curvada", 3, 8),
					ex("Puxada Alta", 3, 10),
					ex("Rosca Direta", 3, 12),
				}},
				{ID: "legs1", Name: "Legs Day 1", Exercises: []domain.PlanExercise{
					ex("Agachamento Livre", 3, 8),
					ex("Stiff", 3, 10),
					ex("Leg Press", 3, 12),
				}},
				{ID: "push2", Name: "Push Day 2", Exercises: []domain.PlanExercise{
					ex("Supino Inclinado", 3, 8),
					ex("Elevação Lateral", 3, 12),
					ex("Tríceps Testa", 3, 12),
				}},
				{ID: "pull2", Name: "Pull Day 2", Exercises: []domain.PlanExercise{
					ex("Barra Fixa", 3, 8),
					ex("Remada Baixa", 3, 10),
					ex("Rosca Concentrada", 3, 12),
				}},
				{ID: "legs2", Name: "Legs Day 2", Exercises: []domain.PlanExercise{
					ex("Levantamento Terra", 2, 5),
					ex("Cadeira Extensora", 3, 12),
					ex("Mesa Flexora", 3, 12),
				}},
			},
		},
	}
}
