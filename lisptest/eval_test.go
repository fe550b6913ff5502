package lisptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"quotes", "", TestSequence{
			{"(quote a)", "a", ""},
			{"(quote (a b c))", "(a b c)", ""},
			{"(quote ())", "()", ""},
			{"(quote (a (b c) d))", "(a (b c) d)", ""},
			{"()", "()", ""},
		}},
		{"pairs", "", TestSequence{
			{"(cons (quote a) (quote b))", "(a . b)", ""},
			{"(cons (quote a) (quote (b c)))", "(a b c)", ""},
			{"(cons (quote a) (cons (quote b) (quote c)))", "(a b . c)", ""},
			{"(cons (quote a) ())", "(a)", ""},
			{"(car (quote (a b)))", "a", ""},
			{"(cdr (quote (a b)))", "(b)", ""},
			{"(car (quote a))", "()", ""},
			{"(cdr ())", "()", ""},
		}},
		{"predicates", "", TestSequence{
			{"(eq? (quote a) (quote a))", "(quote t)", ""},
			{"(eq? (quote a) (quote b))", "()", ""},
			{"(eq? (quote (a)) (quote (a)))", "()", ""},
			{"(eq? () null)", "(quote t)", ""},
			{"(pair? (quote (a)))", "(quote t)", ""},
			{"(pair? (quote a))", "()", ""},
			{"(pair? ())", "()", ""},
			{"(symbol? (quote a))", "(quote t)", ""},
			{"(symbol? (quote (a)))", "()", ""},
			{"(symbol? ())", "()", ""},
			{"(null? ())", "(quote t)", ""},
			{"(null? null)", "(quote t)", ""},
			{"(null? (quote a))", "()", ""},
		}},
		{"lambda", "", TestSequence{
			{"(lambda (x) x)", "<closure>", ""},
			{"((lambda (x) x) (quote a))", "a", ""},
			{"((lambda () (quote a)))", "a", ""},
			{"((lambda (x y) (cons y x)) (quote a) (quote b))", "(b . a)", ""},
			{"((lambda (car) car) (quote x))", "x", ""},
			{"(((lambda (x) (lambda (y) (cons x y))) (quote a)) (quote b))", "(a . b)", ""},
			{"((lambda (x) x) (quote a) (quote b))", "a", ""},
		}},
		{"variadic", "", TestSequence{
			{"((lambda (x . xs) xs) (quote a) (quote b) (quote c))", "(b c)", ""},
			{"((lambda (x . xs) xs) (quote a))", "()", ""},
			{"((lambda (. xs) xs) (quote a) (quote b))", "(a b)", ""},
			{"((lambda xs xs) (quote a) (quote b))", "(a b)", ""},
			{"((lambda (x y . z) (cons y z)) (quote a) (quote b) (quote c) (quote d))", "(b c d)", ""},
		}},
		{"let", "", TestSequence{
			{"(let ((x (quote a)) (y (quote b))) (cons x y))", "(a . b)", ""},
			{"(let () (quote a))", "a", ""},
			{"(let ((x (quote a))) (let ((x (quote b)) (y x)) (cons x y)))", "(b . a)", ""},
			{"(let ((f (lambda (x) (cons x x)))) (f (quote a)))", "(a . a)", ""},
			{"(let (x) x)", "()", "bad syntax: let: binding is not a list: x\n"},
		}},
		{"cond", "", TestSequence{
			{"(cond ((null? (quote a)) (quote no)) ((quote t) (quote yes)))", "yes", ""},
			{"(cond ((quote t) (quote first)) ((quote t) (quote second)))", "first", ""},
			{"(cond ((null? (quote a)) (quote no)))", "()", ""},
			{"(cond)", "()", ""},
			{"(cond ((quote a)))", "a", ""},
			{"(cond ((quote t) (quote yes)) (undefined (quote no)))", "yes", ""},
		}},
		{"recursion", "", TestSequence{
			{"(let ((last (lambda (self l) (cond ((null? (cdr l)) (car l)) ((quote t) (self self (cdr l))))))) (last last (quote (a b c))))", "c", ""},
			{"(let ((rev (lambda (self l acc) (cond ((null? l) acc) ((quote t) (self self (cdr l) (cons (car l) acc))))))) (rev rev (quote (a b c)) ()))", "(c b a)", ""},
		}},
		{"macro", "", TestSequence{
			{"(macro (lambda (x) x))", "<macro>", ""},
			{"((macro (lambda (x) x)) (foo bar))", "(foo bar)", ""},
			{"((macro (lambda (x) (car x))) (car cdr))", "car", ""},
			{"((macro (lambda xs xs)) a b c)", "(a b c)", ""},
			{"(let ((m (macro (lambda (x y) (cons y x))))) (m a b))", "(b . a)", ""},
			{"(macro (quote a))", "()", "bad syntax: macro: argument is not a closure: a\n"},
		}},
		{"apply", "", TestSequence{
			{"(apply cons (quote (a b)))", "(a . b)", ""},
			{"(apply cons (quote a) (quote (b)))", "(a . b)", ""},
			{"(apply (lambda xs xs) (quote a) (quote b) (quote (c d)))", "(a b c d)", ""},
			{"(apply (lambda xs xs))", "()", ""},
			{"(apply car (quote ((a b))))", "a", ""},
			{"(apply (cond ((write (quote fun)) cons)) (write (quote arg)) ())", "((quote t))", "arg\nfun\n"},
		}},
		{"write", "", TestSequence{
			{"(write (quote (a b)))", "(quote t)", "(a b)\n"},
			{"(write (cons (quote a) (quote b)))", "(quote t)", "(a . b)\n"},
			{"(write ())", "(quote t)", "()\n"},
			{"(write car)", "(quote t)", "<primitive car>\n"},
		}},
		{"read", "(x y)\n z", TestSequence{
			{"(read)", "(x y)", ""},
			{"(eq? (read) (quote z))", "(quote t)", ""},
			{"(read)", "()", "i/o error: end of input: EOF\n"},
		}},
		{"builtins", "", TestSequence{
			{"car", "<primitive car>", ""},
			{"quote", "<syntax quote>", ""},
			{"null", "()", ""},
		}},
		{"errors", "", TestSequence{
			{"undefined", "()", "unbound variable: undefined\n"},
			{"(quote a)", "a", ""},
			{"(cons (quote a) undefined)", "(a)", "unbound variable: undefined\n"},
			{"((quote a))", "()", "not applicable: a\n"},
			{"(undefined (quote a))", "()", "unbound variable: undefined\nnot applicable: ()\n"},
			{"((lambda (x y) (cons x y)) (quote a))", "(a)", "too few arguments: 1 argument(s) given: (x y)\nunbound variable: y\n"},
			{"(apply (macro (lambda (x) x)) ())", "()", "not applicable: <macro>\n"},
		}},
	}
	RunTestSuite(t, tests)
}
